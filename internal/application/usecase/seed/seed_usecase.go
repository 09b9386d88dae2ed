package seed

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio/internal/domain/experience"
	"portfolio/internal/domain/profile"
	"portfolio/internal/domain/project"
	"portfolio/pkg/logger"
)

// SeedUseCase bulk-replaces the project, experience and profile collections
// with fixed sample data. Destructive and unconditional; the handler gates it
// to development mode. Blogs are deliberately untouched.
type SeedUseCase struct {
	projects    project.Repository
	experiences experience.Repository
	profiles    profile.Repository
	logger      logger.Logger
}

func NewSeedUseCase(
	projects project.Repository,
	experiences experience.Repository,
	profiles profile.Repository,
	log logger.Logger,
) *SeedUseCase {
	return &SeedUseCase{projects: projects, experiences: experiences, profiles: profiles, logger: log}
}

type Summary struct {
	Projects    int `json:"projects"`
	Experiences int `json:"experiences"`
	Profile     int `json:"profile"`
}

func (uc *SeedUseCase) Run(ctx context.Context) (*Summary, error) {
	if err := uc.projects.DeleteAll(ctx); err != nil {
		return nil, err
	}
	if err := uc.experiences.DeleteAll(ctx); err != nil {
		return nil, err
	}
	if err := uc.profiles.DeleteAll(ctx); err != nil {
		return nil, err
	}

	for _, p := range sampleProjects() {
		if err := uc.projects.Save(ctx, p); err != nil {
			return nil, err
		}
	}
	for _, e := range sampleExperiences() {
		if err := uc.experiences.Save(ctx, e); err != nil {
			return nil, err
		}
	}
	if err := uc.profiles.Save(ctx, sampleProfile()); err != nil {
		return nil, err
	}

	summary := &Summary{Projects: 3, Experiences: 3, Profile: 1}
	uc.logger.Info("database seeded",
		zap.Int("projects", summary.Projects),
		zap.Int("experiences", summary.Experiences),
	)
	return summary, nil
}

func sampleProjects() []*project.Project {
	now := time.Now().UTC()
	return []*project.Project{
		{
			ID:              uuid.New(),
			Title:           "E-Commerce Platform",
			Description:     "A full-stack e-commerce solution with modern UI and secure payments.",
			FullDescription: "Built a comprehensive e-commerce platform using Next.js and TypeScript. Features include user authentication, product catalog, shopping cart, secure checkout with Stripe integration, order management, and admin dashboard.",
			Technologies:    []string{"Next.js", "TypeScript", "MongoDB", "Stripe", "Tailwind CSS"},
			GithubURL:       "https://github.com/yourusername/ecommerce",
			LiveURL:         "https://yourproject.com",
			Category:        "Full Stack",
			Featured:        true,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              uuid.New(),
			Title:           "Task Management App",
			Description:     "Collaborative task management tool with real-time updates.",
			FullDescription: "Developed a collaborative task management application with real-time synchronization. Features drag-and-drop task boards, team collaboration, deadline tracking, file attachments, and notifications.",
			Technologies:    []string{"React", "Node.js", "Socket.io", "PostgreSQL", "Material-UI"},
			GithubURL:       "https://github.com/yourusername/taskmanager",
			LiveURL:         "https://yourtaskapp.com",
			Category:        "Frontend",
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              uuid.New(),
			Title:           "Weather Dashboard",
			Description:     "Beautiful weather app with location-based forecasts and analytics.",
			FullDescription: "Created a comprehensive weather dashboard that provides detailed weather information, forecasts, and analytics. Integrated with multiple weather APIs for accurate data.",
			Technologies:    []string{"Vue.js", "Python", "FastAPI", "Chart.js", "OpenWeather API"},
			GithubURL:       "https://github.com/yourusername/weather",
			LiveURL:         "https://yourweather.com",
			Category:        "Frontend",
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}
}

func sampleExperiences() []*experience.Experience {
	now := time.Now().UTC()
	date := func(y int) time.Time { return time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC) }
	end2022 := date(2022)
	end2021 := date(2021)
	return []*experience.Experience{
		{
			ID:           uuid.New(),
			Title:        "Senior Full Stack Developer",
			Company:      "Tech Solutions Inc.",
			Duration:     "2022 - Present",
			Location:     "Remote",
			Description:  "Led development of scalable web applications using React, Node.js, and cloud technologies. Mentored junior developers and collaborated with cross-functional teams.",
			Technologies: []string{"React", "Node.js", "AWS", "MongoDB", "TypeScript"},
			Current:      true,
			StartDate:    date(2022),
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           uuid.New(),
			Title:        "Frontend Developer",
			Company:      "Digital Agency Pro",
			Duration:     "2021 - 2022",
			Location:     "New York, NY",
			Description:  "Developed responsive web applications and improved user experience across multiple client projects.",
			Technologies: []string{"React", "JavaScript", "CSS3", "Figma", "Git"},
			StartDate:    date(2021),
			EndDate:      &end2022,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           uuid.New(),
			Title:        "Junior Web Developer",
			Company:      "StartUp Ventures",
			Duration:     "2020 - 2021",
			Location:     "San Francisco, CA",
			Description:  "Built and maintained company websites and contributed to internal tools and dashboards.",
			Technologies: []string{"HTML5", "CSS3", "JavaScript", "PHP", "MySQL"},
			StartDate:    date(2020),
			EndDate:      &end2021,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
}

func sampleProfile() *profile.Profile {
	p := profile.Default()
	p.Phone = "+1 (555) 123-4567"
	p.Bio = "Passionate full-stack developer with expertise in modern web technologies. I love creating digital experiences that make a difference."
	return p
}
