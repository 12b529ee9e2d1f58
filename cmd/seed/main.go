package main

import (
	"context"
	"log"
	"time"

	"talent-compass/internal/models"
	"talent-compass/internal/repository"
	"talent-compass/pkg/auth"
	"talent-compass/pkg/config"
	"talent-compass/pkg/logger"
	"talent-compass/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type careerSeed struct {
	name           string
	description    string
	requiredSkills map[string]float64
	courses        []courseSeed
}

type courseSeed struct {
	title       string
	description string
	link        string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	questionRepo := repository.NewQuestionRepository(db, appLogger)
	careerRepo := repository.NewCareerRepository(db, appLogger)
	userRepo := repository.NewUserRepository(db, appLogger)

	appLogger.Info("Starting database seeding...")

	if err := seedCareers(ctx, careerRepo); err != nil {
		appLogger.Fatal("Failed to seed career catalogue", zap.Error(err))
	}
	if err := seedQuestions(ctx, questionRepo); err != nil {
		appLogger.Fatal("Failed to seed questions", zap.Error(err))
	}
	if err := seedDemoUser(ctx, userRepo); err != nil {
		appLogger.Fatal("Failed to seed demo user", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!")
}

func seedCareers(ctx context.Context, repo *repository.CareerRepository) error {
	for _, seed := range careerCatalogue {
		career := &models.CareerPath{
			ID:             uuid.New(),
			Name:           seed.name,
			Description:    seed.description,
			RequiredSkills: seed.requiredSkills,
		}
		if err := repo.Create(ctx, career); err != nil {
			return err
		}
		for _, cs := range seed.courses {
			course := &models.Course{
				ID:           uuid.New(),
				CareerPathID: career.ID,
				Title:        cs.title,
				Description:  cs.description,
				Link:         cs.link,
			}
			if err := repo.CreateCourse(ctx, course); err != nil {
				return err
			}
		}
	}
	return nil
}

func seedQuestions(ctx context.Context, repo *repository.QuestionRepository) error {
	for category, texts := range questionnaire {
		for _, text := range texts {
			question := &models.Question{
				ID:       uuid.New(),
				Text:     text,
				Category: category,
			}
			if err := repo.Create(ctx, question); err != nil {
				return err
			}
		}
	}
	return nil
}

func seedDemoUser(ctx context.Context, repo *repository.UserRepository) error {
	hashed, err := auth.HashPassword("demo-password")
	if err != nil {
		return err
	}
	now := time.Now()
	return repo.Create(ctx, &models.User{
		ID:        uuid.New(),
		Username:  "demo",
		Email:     "demo@talent-compass.io",
		Password:  hashed,
		Role:      "user",
		CreatedAt: now,
		UpdatedAt: now,
	})
}

var careerCatalogue = []careerSeed{
	{
		name:           "Social Worker",
		description:    "Helping individuals and families cope with challenges.",
		requiredSkills: map[string]float64{"Empathy": 5, "Communication": 3},
		courses: []courseSeed{
			{"Foundations of Social Work", "An introduction to social work practice.", "https://example.com/social-work"},
		},
	},
	{
		name:           "Counselor",
		description:    "Providing guidance and support through counseling.",
		requiredSkills: map[string]float64{"Empathy": 5, "Communication": 4},
		courses: []courseSeed{
			{"Effective Counseling Techniques", "Learn the basics of counseling and therapy.", "https://example.com/counseling"},
		},
	},
	{
		name:           "Nurse",
		description:    "Caring for patients and providing critical support in health care.",
		requiredSkills: map[string]float64{"Empathy": 5, "Technical Aptitude": 2},
		courses: []courseSeed{
			{"Nursing Essentials", "Fundamental skills and knowledge for nursing.", "https://example.com/nursing"},
		},
	},
	{
		name:           "Designer",
		description:    "Creating visual concepts for various media.",
		requiredSkills: map[string]float64{"Creativity": 5, "Technical Aptitude": 2},
		courses: []courseSeed{
			{"Graphic Design Masterclass", "Become a professional graphic designer.", "https://example.com/graphic-design"},
		},
	},
	{
		name:           "Content Creator",
		description:    "Developing engaging content across digital platforms.",
		requiredSkills: map[string]float64{"Creativity": 5, "Communication": 3},
		courses: []courseSeed{
			{"Content Creation for Digital Media", "Techniques for creating engaging digital content.", "https://example.com/content-creation"},
		},
	},
	{
		name:           "Illustrator",
		description:    "Producing creative illustrations for books, media, and advertising.",
		requiredSkills: map[string]float64{"Creativity": 5},
		courses: []courseSeed{
			{"Illustration Techniques", "Learn drawing and illustration techniques.", "https://example.com/illustration"},
		},
	},
	{
		name:           "Software Developer",
		description:    "Designing and building software solutions.",
		requiredSkills: map[string]float64{"Logical Thinking": 5, "Technical Aptitude": 4},
		courses: []courseSeed{
			{"Full-Stack Software Development", "From fundamentals to advanced software development.", "https://example.com/software-development"},
		},
	},
	{
		name:           "Data Analyst",
		description:    "Interpreting data to help businesses make strategic decisions.",
		requiredSkills: map[string]float64{"Logical Thinking": 5, "Technical Aptitude": 3},
		courses: []courseSeed{
			{"Data Analysis with Python", "Analyze data using Python tools and libraries.", "https://example.com/data-analysis"},
		},
	},
	{
		name:           "Financial Analyst",
		description:    "Analyzing financial data to support decision-making.",
		requiredSkills: map[string]float64{"Logical Thinking": 5, "Communication": 2},
		courses: []courseSeed{
			{"Financial Analysis and Modeling", "Develop skills in analyzing and modeling financial data.", "https://example.com/financial-analysis"},
		},
	},
	{
		name:           "Public Speaker",
		description:    "Delivering speeches and presentations to large audiences.",
		requiredSkills: map[string]float64{"Communication": 5, "Leadership": 3},
		courses: []courseSeed{
			{"Public Speaking Essentials", "Improve your public speaking and presentation skills.", "https://example.com/public-speaking"},
		},
	},
	{
		name:           "Journalist",
		description:    "Researching and reporting news and stories.",
		requiredSkills: map[string]float64{"Communication": 5, "Creativity": 3},
		courses: []courseSeed{
			{"Journalism and Reporting", "Learn the art of investigative journalism.", "https://example.com/journalism"},
		},
	},
	{
		name:           "Customer Support Specialist",
		description:    "Assisting customers and resolving issues effectively.",
		requiredSkills: map[string]float64{"Communication": 5, "Empathy": 3},
		courses: []courseSeed{
			{"Customer Service Excellence", "Techniques to excel in customer support and communication.", "https://example.com/customer-support"},
		},
	},
	{
		name:           "Project Manager",
		description:    "Planning and executing projects from conception to completion.",
		requiredSkills: map[string]float64{"Leadership": 5, "Communication": 3},
		courses: []courseSeed{
			{"Project Management Professional (PMP) Prep", "Get ready for PMP certification and beyond.", "https://example.com/project-management"},
		},
	},
	{
		name:           "Entrepreneur",
		description:    "Starting and managing new business ventures.",
		requiredSkills: map[string]float64{"Leadership": 5, "Creativity": 3},
		courses: []courseSeed{
			{"Entrepreneurship 101", "Start and run your own business successfully.", "https://example.com/entrepreneurship"},
		},
	},
	{
		name:           "Community Organizer",
		description:    "Mobilizing and leading community initiatives.",
		requiredSkills: map[string]float64{"Leadership": 5, "Empathy": 3},
		courses: []courseSeed{
			{"Community Leadership and Organizing", "Learn how to mobilize community efforts.", "https://example.com/community-organizing"},
		},
	},
	{
		name:           "Network Engineer",
		description:    "Designing and maintaining network infrastructure.",
		requiredSkills: map[string]float64{"Technical Aptitude": 5, "Logical Thinking": 3},
		courses: []courseSeed{
			{"Network Engineering Fundamentals", "Core concepts of network design and management.", "https://example.com/network-engineering"},
		},
	},
	{
		name:           "Web Developer",
		description:    "Building and maintaining websites.",
		requiredSkills: map[string]float64{"Technical Aptitude": 5, "Creativity": 2},
		courses: []courseSeed{
			{"Modern Web Development", "Build responsive and scalable websites.", "https://example.com/web-development"},
		},
	},
	{
		name:           "Cybersecurity Analyst",
		description:    "Protecting systems and networks from cyber threats.",
		requiredSkills: map[string]float64{"Technical Aptitude": 5, "Logical Thinking": 4},
		courses: []courseSeed{
			{"Cybersecurity Basics", "Introduction to cybersecurity principles and practices.", "https://example.com/cybersecurity"},
		},
	},
}

var questionnaire = map[string][]string{
	"Empathy": {
		"I enjoy helping others solve their problems.",
		"I can easily understand how others feel.",
		"I feel fulfilled when I support someone emotionally.",
		"People often come to me for emotional support.",
		"I remain calm and comforting in tense situations.",
		"I feel a strong need to improve the lives of people around me.",
		"I naturally comfort those who are upset.",
		"I enjoy volunteering or engaging in community service.",
	},
	"Creativity": {
		"I often come up with new ideas or solutions.",
		"I enjoy creating art, music, or stories.",
		"I see patterns or possibilities that others might miss.",
		"I enjoy designing things.",
		"I think outside the box to solve problems.",
		"I get inspired by nature, art, or culture.",
		"I enjoy photography, sketching, or video editing.",
		"I like working on DIY or crafting projects.",
	},
	"Logical Thinking": {
		"I like working with logic and patterns.",
		"I enjoy solving puzzles or writing code.",
		"I prefer structured tasks with clear rules.",
		"I like working with numbers or data.",
		"I enjoy breaking down complex problems into smaller parts.",
		"I like analyzing why things work the way they do.",
		"I find math or logic-based games fun.",
		"I value precision and accuracy in tasks.",
	},
	"Communication": {
		"I am comfortable speaking in front of groups.",
		"I express my ideas clearly in speech and writing.",
		"I enjoy having conversations with diverse groups of people.",
		"I can simplify complex topics when explaining them.",
		"I like debating or confidently sharing my opinions.",
		"I enjoy writing, blogging, or storytelling.",
		"I actively participate in group discussions.",
		"I frequently use social media or other platforms to express ideas.",
	},
	"Leadership": {
		"I naturally take charge during group tasks.",
		"I enjoy motivating others to achieve common goals.",
		"I am confident in making decisions for a team.",
		"I enjoy organizing or leading events.",
		"I think strategically to set long-term goals.",
		"I effectively handle conflicts within a group.",
		"I am seen as responsible and dependable by my peers.",
		"I often take the initiative without being asked.",
	},
	"Technical Aptitude": {
		"I am interested in how computers or machines work.",
		"I enjoy building or repairing electronic devices.",
		"I can quickly learn new technologies.",
		"I like experimenting with different software or apps.",
		"I enjoy working with modern tech tools or gadgets.",
		"I regularly follow cybersecurity or tech innovation news.",
		"I understand how various systems and networks connect.",
		"I enjoy solving technical problems that others find challenging.",
	},
}
