// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"time"

	"sitecms/internal/models"
)

// Snapshot is the full content of a store, used to seed a fresh deployment.
type Snapshot struct {
	Pages    []models.Page
	Media    []models.MediaFile
	Settings models.WebsiteSettings
}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func cta(text, href, style string) *models.CallToAction {
	return &models.CallToAction{Text: text, Href: href, Style: style}
}

func contentSection(id, name string, order int, title, desc, body string) models.Section {
	return models.Section{
		ID: id, Name: name, Type: models.SectionContent, Enabled: true, Order: order,
		Data: models.ContentData{Title: title, Description: desc, Content: body},
	}
}

const (
	seedAddress = "17 Aje Street, Sabo Yaba Lagos."
	seedPhone   = "+2347074693513"
	seedEmail   = "info@1techacademy.com"
)

// DefaultSnapshot returns the content a new site starts with.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Pages:    seedPages(),
		Media:    seedMedia(),
		Settings: seedSettings(),
	}
}

func seedPages() []models.Page {
	legal := func(id, title, metaDesc, keywords string, views int, sections ...models.Section) models.Page {
		return models.Page{
			ID: id, Title: title, Slug: "/" + id, Status: models.PageStatusPublished,
			MetaTitle:       title + " - 1Tech Academy",
			MetaDescription: metaDesc,
			MetaKeywords:    keywords,
			Sections:        sections,
			CreatedAt:       ts("2024-01-08T11:00:00Z"),
			UpdatedAt:       ts("2024-01-15T14:30:00Z"),
			Author:          models.DefaultAuthor,
			Views:           views,
		}
	}

	return []models.Page{
		{
			ID:              "landing",
			Title:           "Landing Page",
			Slug:            models.LandingSlug,
			Status:          models.PageStatusPublished,
			MetaTitle:       "1Tech Academy - Awaken Your Tech Future",
			MetaDescription: "Empowering tomorrow's tech leaders through real-world projects, professional certifications, and a transformative learning environment.",
			MetaKeywords:    "tech education, programming courses, web development, software engineering, tech academy, Nigeria",
			Sections: []models.Section{
				{
					ID: "hero", Name: "Hero Section", Type: models.SectionHero, Enabled: true, Order: 1,
					Data: models.HeroData{
						Title:           "Awaken Your Tech Future with 1Tech Academy.",
						Subtitle:        "Empowering tomorrow's tech leaders through real-world projects, professional certifications, and a transformative learning environment.",
						PrimaryCTA:      cta("Enroll Now", "/signup", "primary"),
						SecondaryCTA:    cta("Learn More", "#courses", "outline"),
						BackgroundImage: "/hero-bg.jpg",
					},
				},
				contentSection("about", "About Us Section", 2,
					"About 1Tech Academy",
					"We are a community where creativity thrives, innovation takes shape, and transformation begins.",
					"Here, you'll build problem-solving skills, grow your professional network, and gain the confidence to turn ideas into reality."),
				{
					ID: "why-us", Name: "Why Choose Us", Type: models.SectionFeatures, Enabled: true, Order: 3,
					Data: models.FeaturesData{
						Title:       "Why Choose 1Tech Academy",
						Description: "At 1Tech Academy, you're not just learning, you're joining a network of like-minded professionals, industry leaders, and tech enthusiasts.",
						Features: []models.Feature{
							{
								ID:          "who-we-are",
								Title:       "Who We Are",
								Description: "In today's digital world, technology is the backbone of innovation. At 1Tech Academy, we cultivate future-ready professionals who thrive in the evolving digital landscape.",
								Icon:        "target",
							},
							{
								ID:          "what-we-do",
								Title:       "What We Do",
								Description: "Join a network of professionals, leaders, and tech enthusiasts. Our career-focused approach ensures you're job-ready from day one, unlocking limitless opportunities.",
								Icon:        "eye",
							},
						},
					},
				},
				{
					ID: "courses", Name: "Explore Our Courses", Type: models.SectionCourses, Enabled: true, Order: 4,
					Data: models.CoursesData{
						Title:       "Explore Our Courses",
						Description: "Unlock your potential with industry-leading tech courses taught by experts.",
					},
				},
				{
					ID: "onboarding", Name: "Get Started Steps", Type: models.SectionCTA, Enabled: true, Order: 5,
					Data: models.CTAData{
						Title:       "Get Started with 1Tech Academy",
						Description: "Follow these simple steps to begin your learning journey with us.",
						Steps: []models.Step{
							{Number: 1, Title: "Sign Up", Description: "Create your account with your email address to join our learning platform."},
							{Number: 2, Title: "Explore Courses", Description: "Browse our catalog of professional courses and select the ones that match your goals."},
							{Number: 3, Title: "Enroll in Session", Description: "Choose an available session with open seats that fits your schedule."},
							{Number: 4, Title: "Learn", Description: "Access course materials, participate in discussions, and track your progress."},
						},
						PrimaryCTA: cta("Join 1Tech Today", "/signup", "primary"),
					},
				},
				{
					ID: "technologies", Name: "Technologies We Teach", Type: models.SectionTechnologies, Enabled: true, Order: 6,
					Data: models.TechnologiesData{
						Title:       "Technologies We Teach",
						Description: "Master the tools and platforms shaping the future of tech.",
					},
				},
				{
					ID: "testimonials", Name: "Testimonials", Type: models.SectionTestimonials, Enabled: true, Order: 7,
					Data: models.TestimonialsData{
						Title:       "What Our Clients Say",
						Description: "Hear from students, educators, and partners who've transformed their learning journey with 1TechAcademy.",
					},
				},
				{
					ID: "contact", Name: "Contact Us", Type: models.SectionContact, Enabled: true, Order: 8,
					Data: models.ContactData{
						Title:       "Ready to Get in Touch?",
						Description: "Fill out the form or reach out directly through any of the following methods.",
						Address:     seedAddress,
						Phone:       seedPhone,
						Email:       seedEmail,
					},
				},
			},
			CreatedAt: ts("2024-01-15T10:30:00Z"),
			UpdatedAt: ts("2024-01-15T14:22:00Z"),
			Author:    models.DefaultAuthor,
			Views:     1250,
		},
		{
			ID:              "about",
			Title:           "About Us",
			Slug:            "/about",
			Status:          models.PageStatusPublished,
			MetaTitle:       "About 1Tech Academy - Our Mission & Vision",
			MetaDescription: "Learn more about our mission, vision, and commitment to tech education excellence in Africa.",
			MetaKeywords:    "about 1tech academy, mission, vision, tech education, Nigeria",
			Sections: []models.Section{
				{
					ID: "about-hero", Name: "About Hero", Type: models.SectionHero, Enabled: true, Order: 1,
					Data: models.HeroData{
						Title:           "About 1Tech Academy",
						Subtitle:        "Shaping the future of tech education in Africa",
						BackgroundImage: "/about-hero.jpg",
					},
				},
				contentSection("mission-vision", "Mission & Vision", 2,
					"Our Mission & Vision",
					"Driving transformation through technology education",
					"Our mission is to empower Africa's next generation of tech leaders by delivering world-class, hands-on training through in-person mentorship, global expertise, and an uncompromising standard of excellence."),
			},
			CreatedAt: ts("2024-01-14T15:45:00Z"),
			UpdatedAt: ts("2024-01-14T15:45:00Z"),
			Author:    models.DefaultAuthor,
			Views:     890,
		},
		{
			ID:              "contact",
			Title:           "Contact",
			Slug:            "/contact",
			Status:          models.PageStatusDraft,
			MetaTitle:       "Contact 1Tech Academy",
			MetaDescription: "Get in touch with us for inquiries about our courses and programs.",
			MetaKeywords:    "contact, 1tech academy, inquiries, support",
			Sections: []models.Section{
				{
					ID: "contact-form", Name: "Contact Form", Type: models.SectionContact, Enabled: true, Order: 1,
					Data: models.ContactData{
						Title:       "Get in Touch",
						Description: "We'd love to hear from you",
						Address:     seedAddress,
						Phone:       seedPhone,
						Email:       seedEmail,
					},
				},
			},
			CreatedAt: ts("2024-01-12T09:20:00Z"),
			UpdatedAt: ts("2024-01-12T09:20:00Z"),
			Author:    models.DefaultAuthor,
			Views:     0,
		},
		{
			ID:              "courses",
			Title:           "Our Courses",
			Slug:            "/public-courses",
			Status:          models.PageStatusPublished,
			MetaTitle:       "Tech Courses at 1Tech Academy",
			MetaDescription: "Explore our comprehensive range of technology courses designed for professionals.",
			MetaKeywords:    "tech courses, programming, web development, software engineering",
			Sections: []models.Section{
				{
					ID: "courses-hero", Name: "Courses Hero", Type: models.SectionHero, Enabled: true, Order: 1,
					Data: models.HeroData{
						Title:           "Our Courses",
						Subtitle:        "Professional tech education for the modern world",
						BackgroundImage: "/courses-hero.jpg",
					},
				},
				{
					ID: "courses-grid", Name: "Courses Grid", Type: models.SectionCourses, Enabled: true, Order: 2,
					Data: models.CoursesData{
						Title:       "Available Courses",
						Description: "Choose from our range of professional courses",
					},
				},
			},
			CreatedAt: ts("2024-01-10T14:15:00Z"),
			UpdatedAt: ts("2024-01-10T14:15:00Z"),
			Author:    models.DefaultAuthor,
			Views:     2100,
		},
		legal("privacy-policy", "Privacy Policy",
			"Our commitment to protecting your privacy and personal data.",
			"privacy policy, data protection, GDPR, personal information", 156,
			contentSection("privacy-overview", "Privacy Policy Overview", 1,
				"Privacy Policy", "Last updated: January 2024",
				"At 1Tech Academy, we are committed to protecting your privacy and ensuring the security of your personal information. This Privacy Policy explains how we collect, use, disclose, and safeguard your information when you visit our website or use our services."),
			contentSection("data-collection", "Information We Collect", 2,
				"Information We Collect", "What data we gather and how",
				"We collect information you provide directly to us, such as when you create an account, enroll in courses, or contact us. This may include your name, email address, phone number, and educational background."),
			contentSection("data-usage", "How We Use Your Information", 3,
				"How We Use Your Information", "Our data usage practices",
				"We use the information we collect to provide, maintain, and improve our services, process transactions, send communications, and comply with legal obligations."),
		),
		legal("terms-conditions", "Terms and Conditions",
			"Terms of service and conditions for using 1Tech Academy platform and services.",
			"terms of service, conditions, legal, agreement, platform usage", 89,
			contentSection("terms-overview", "Terms Overview", 1,
				"Terms and Conditions", "Last updated: January 2024",
				"These Terms and Conditions govern your use of the 1Tech Academy website and services. By accessing or using our platform, you agree to be bound by these terms."),
			contentSection("user-responsibilities", "User Responsibilities", 2,
				"User Responsibilities", "Your obligations as a platform user",
				"Users are responsible for maintaining the confidentiality of their account information, using the platform in accordance with applicable laws, and respecting intellectual property rights."),
			contentSection("platform-rules", "Platform Usage Rules", 3,
				"Platform Usage Rules", "Guidelines for platform interaction",
				"Users must not engage in harmful activities, share inappropriate content, or attempt to compromise the security of our platform or other users' accounts."),
		),
		legal("cookies-policy", "Cookies Policy",
			"How we use cookies and similar technologies to enhance your experience on our platform.",
			"cookies policy, tracking, web technologies, user experience", 67,
			contentSection("cookies-overview", "Cookies Overview", 1,
				"Cookies Policy", "Last updated: January 2024",
				"This Cookies Policy explains how 1Tech Academy uses cookies and similar technologies to recognize you when you visit our website and use our services."),
			contentSection("cookie-types", "Types of Cookies We Use", 2,
				"Types of Cookies We Use", "Different categories of cookies",
				"We use essential cookies for platform functionality, performance cookies to analyze usage, and preference cookies to remember your settings and improve your experience."),
			contentSection("cookie-management", "Managing Your Cookie Preferences", 3,
				"Managing Your Cookie Preferences", "How to control cookie settings",
				"You can control and manage cookies through your browser settings. However, disabling certain cookies may affect the functionality of our platform."),
		),
		legal("data-protection-policy", "Data Protection Policy",
			"Our comprehensive approach to data protection and GDPR compliance.",
			"data protection, GDPR, data security, compliance, personal data", 45,
			contentSection("data-protection-overview", "Data Protection Overview", 1,
				"Data Protection Policy", "Last updated: January 2024",
				"1Tech Academy is committed to protecting your personal data in accordance with applicable data protection laws, including the General Data Protection Regulation (GDPR)."),
			contentSection("data-rights", "Your Data Rights", 2,
				"Your Data Rights", "Understanding your rights regarding personal data",
				"You have the right to access, rectify, erase, restrict processing, data portability, and object to processing of your personal data. You also have the right to withdraw consent at any time."),
			contentSection("data-security", "Data Security Measures", 3,
				"Data Security Measures", "How we protect your information",
				"We implement appropriate technical and organizational measures to ensure a level of security appropriate to the risk, including encryption, access controls, and regular security assessments."),
		),
		{
			ID:              "help-support",
			Title:           "Help & Support",
			Slug:            "/help-support",
			Status:          models.PageStatusPublished,
			MetaTitle:       "Help & Support - 1Tech Academy",
			MetaDescription: "Get help and support for using the 1Tech Academy platform and services.",
			MetaKeywords:    "help, support, FAQ, assistance, customer service, troubleshooting",
			Sections: []models.Section{
				contentSection("help-overview", "Help & Support Overview", 1,
					"Help & Support", "We're here to help you succeed",
					"Welcome to our Help & Support center. Here you'll find answers to common questions, troubleshooting guides, and information on how to get the most out of your 1Tech Academy experience."),
				contentSection("getting-started", "Getting Started", 2,
					"Getting Started", "New to 1Tech Academy? Start here",
					"Learn how to create your account, enroll in courses, navigate the platform, and access your learning materials. Our step-by-step guides will help you get started quickly."),
				{
					ID: "faq-section", Name: "Frequently Asked Questions", Type: models.SectionFAQ, Enabled: true, Order: 3,
					Data: models.FAQData{
						Title:       "Frequently Asked Questions",
						Description: "Common questions and answers",
						FAQs: []models.FAQItem{
							{
								Question: "How do I reset my password?",
								Answer:   "You can reset your password by clicking the 'Forgot Password' link on the login page and following the instructions sent to your email.",
							},
							{
								Question: "How do I access my courses?",
								Answer:   "After logging in, go to your dashboard where you'll see all your enrolled courses. Click on any course to access the learning materials.",
							},
							{
								Question: "Can I download course materials?",
								Answer:   "Yes, most course materials can be downloaded for offline viewing. Look for the download icon next to each resource.",
							},
						},
					},
				},
				{
					ID: "contact-support", Name: "Contact Support", Type: models.SectionContact, Enabled: true, Order: 4,
					Data: models.ContactData{
						Title:        "Contact Our Support Team",
						Description:  "Still need help? Get in touch with us",
						Email:        "support@1techacademy.com",
						Phone:        "+234 (0) 123 456 7890",
						Address:      "17 Aje Street, Sabo, Yaba, Lagos, Nigeria",
						SupportHours: "Monday - Friday: 9:00 AM - 6:00 PM WAT",
					},
				},
			},
			CreatedAt: ts("2024-01-08T11:00:00Z"),
			UpdatedAt: ts("2024-01-15T14:30:00Z"),
			Author:    models.DefaultAuthor,
			Views:     234,
		},
	}
}

func seedMedia() []models.MediaFile {
	dims := func(w, h int) *models.Dimensions { return &models.Dimensions{Width: w, Height: h} }
	everywhere := []string{"landing", "about", "contact"}

	return []models.MediaFile{
		{
			ID: "hero-bg-1", Name: "hero-background.jpg", Type: models.MediaImage,
			URL: "/images/hero-bg.jpg", Size: 2457600, Dimensions: dims(1920, 1080),
			Alt:        "Hero background showing students learning technology",
			Caption:    "Main hero background image",
			UploadedAt: ts("2024-01-15T10:30:00Z"),
			UsedIn:     []string{"landing"},
		},
		{
			ID: "logo-light", Name: "logo.png", Type: models.MediaImage,
			URL: "/logo.png", Size: 45000, Dimensions: dims(200, 50),
			Alt:        "1Tech Academy Logo",
			Caption:    "Main logo for light theme",
			UploadedAt: ts("2024-01-14T15:45:00Z"),
			UsedIn:     append([]string(nil), everywhere...),
		},
		{
			ID: "logo-dark", Name: "logo_dark.png", Type: models.MediaImage,
			URL: "/logo_dark.png", Size: 47000, Dimensions: dims(200, 50),
			Alt:        "1Tech Academy Logo Dark",
			Caption:    "Main logo for dark theme",
			UploadedAt: ts("2024-01-14T15:45:00Z"),
			UsedIn:     append([]string(nil), everywhere...),
		},
		{
			ID: "course-intro-video", Name: "course-intro-video.mp4", Type: models.MediaVideo,
			URL: "/videos/course-intro.mp4", Size: 15728640, Dimensions: dims(1280, 720),
			Alt:        "Course introduction video",
			Caption:    "Introduction video for new students",
			UploadedAt: ts("2024-01-12T09:20:00Z"),
			UsedIn:     []string{"courses"},
		},
		{
			ID: "student-testimonial-1", Name: "student-testimonial.jpg", Type: models.MediaImage,
			URL: "/images/testimonial-1.jpg", Size: 1843200, Dimensions: dims(800, 600),
			Alt:        "Happy student testimonial photo",
			Caption:    "Student success story photo",
			UploadedAt: ts("2024-01-10T14:15:00Z"),
			UsedIn:     []string{"landing"},
		},
		{
			ID: "tech-icons", Name: "tech-icons.svg", Type: models.MediaImage,
			URL: "/icons/tech-stack.svg", Size: 120000, Dimensions: dims(500, 500),
			Alt:        "Technology stack icons",
			Caption:    "Icons representing technologies we teach",
			UploadedAt: ts("2024-01-08T11:00:00Z"),
			UsedIn:     []string{"landing"},
		},
		{
			ID: "academy-brochure", Name: "1tech-academy-brochure.pdf", Type: models.MediaDocument,
			URL: "/documents/brochure.pdf", Size: 3355443,
			Alt:        "1Tech Academy Course Brochure",
			Caption:    "Comprehensive course information brochure",
			UploadedAt: ts("2024-01-05T16:30:00Z"),
			UsedIn:     []string{"about", "courses"},
		},
		{
			ID: "mission-image", Name: "mission-vision.jpg", Type: models.MediaImage,
			URL:  "https://images.pexels.com/photos/7689856/pexels-photo-7689856.jpeg",
			Size: 2100000, Dimensions: dims(1260, 750),
			Alt:        "Students collaborating on a tech project",
			Caption:    "Mission section background image",
			UploadedAt: ts("2024-01-15T10:30:00Z"),
			UsedIn:     []string{"landing", "about"},
		},
		{
			ID: "vision-image", Name: "vision-future.jpg", Type: models.MediaImage,
			URL:  "https://img.freepik.com/free-photo/black-woman-experiencing-virtual-reality-with-vr-headset_53876-137559.jpg",
			Size: 1950000, Dimensions: dims(740, 555),
			Alt:        "Woman experiencing virtual reality technology",
			Caption:    "Vision section background image",
			UploadedAt: ts("2024-01-15T10:30:00Z"),
			UsedIn:     []string{"landing", "about"},
		},
	}
}

func seedSettings() models.WebsiteSettings {
	return models.WebsiteSettings{
		SiteName:        "1Tech Academy",
		SiteDescription: "Empowering tomorrow's tech leaders through real-world projects, professional certifications, and a transformative learning environment.",
		SiteURL:         "https://1techacademy.com",
		AdminEmail:      "admin@1techacademy.com",

		MetaTitle:       "1Tech Academy - Awaken Your Tech Future",
		MetaDescription: "Empowering tomorrow's tech leaders through real-world projects, professional certifications, and a transformative learning environment.",
		MetaKeywords:    "tech education, programming courses, web development, software engineering, tech academy, Nigeria, Africa, coding bootcamp",

		ContactEmail:   seedEmail,
		ContactPhone:   seedPhone,
		ContactAddress: "17 Aje Street, Sabo Yaba Lagos, Nigeria",

		SocialMedia: models.SocialMedia{
			Facebook:  "https://www.facebook.com/share/162ZNuWcgu/?mibextid=wwXIfr",
			Twitter:   "",
			Instagram: "https://www.instagram.com/1tech_academy?igsh=ZmptMDJyemtjZ2lm&utm_source=qr",
			LinkedIn:  "https://www.linkedin.com/company/1tech-academy/?viewAsMember=true",
			YouTube:   "https://www.youtube.com/@1techAcademy",
			TikTok:    "https://www.tiktok.com/@1tech.academy?_t=ZM-8vuaPPKBpLR&_r=1",
		},
		Features: models.FeatureToggles{
			EnableRegistration: true,
			EnableComments:     false,
			EnableNewsletter:   true,
			EnableAnalytics:    true,
		},
		Appearance: models.Appearance{
			PrimaryColor:   "#C99700",
			SecondaryColor: "#1a1a1a",
			LogoURL:        "/logo.png",
			DarkLogoURL:    "/logo_dark.png",
			FaviconURL:     "/favicon.ico",
		},
		Analytics: &models.Analytics{
			GoogleAnalyticsID: "GA-XXXXXXXXX",
			FacebookPixelID:   "",
		},
	}
}

// SectionTemplates returns the predefined reusable section templates.
func SectionTemplates() []models.SectionTemplate {
	return []models.SectionTemplate{
		{
			ID:          "hero-default",
			Name:        "Default Hero Section",
			Type:        models.SectionHero,
			Description: "Standard hero section with title, subtitle, and CTA buttons",
			Thumbnail:   "/templates/hero-default.jpg",
			DefaultData: models.HeroData{
				Title:           "Your Amazing Title Here",
				Subtitle:        "Compelling subtitle that describes your value proposition",
				PrimaryCTA:      cta("Get Started", "/signup", "primary"),
				SecondaryCTA:    cta("Learn More", "#about", "outline"),
				BackgroundImage: "/hero-bg.jpg",
			},
			IsReusable: true,
			Category:   "header",
		},
		{
			ID:          "content-two-column",
			Name:        "Two Column Content",
			Type:        models.SectionContent,
			Description: "Content section with title, description and two-column layout",
			Thumbnail:   "/templates/content-two-column.jpg",
			DefaultData: models.ContentData{
				Title:       "Section Title",
				Description: "Section description goes here",
				Content:     "Your main content text goes here. This can be multiple paragraphs.",
			},
			IsReusable: true,
			Category:   "content",
		},
		{
			ID:          "features-grid",
			Name:        "Features Grid",
			Type:        models.SectionFeatures,
			Description: "Grid layout for displaying features with icons and descriptions",
			Thumbnail:   "/templates/features-grid.jpg",
			DefaultData: models.FeaturesData{
				Title:       "Our Features",
				Description: "Discover what makes us special",
				Features: []models.Feature{
					{ID: "feature-1", Title: "Feature One", Description: "Description of your first feature", Icon: "star"},
					{ID: "feature-2", Title: "Feature Two", Description: "Description of your second feature", Icon: "heart"},
					{ID: "feature-3", Title: "Feature Three", Description: "Description of your third feature", Icon: "shield"},
				},
			},
			IsReusable: true,
			Category:   "content",
		},
		{
			ID:          "contact-form",
			Name:        "Contact Form Section",
			Type:        models.SectionContact,
			Description: "Contact form with company information and social links",
			Thumbnail:   "/templates/contact-form.jpg",
			DefaultData: models.ContactData{
				Title:       "Get in Touch",
				Description: "We'd love to hear from you",
				Address:     "Your Company Address",
				Phone:       "+1234567890",
				Email:       "contact@yourcompany.com",
			},
			IsReusable: true,
			Category:   "footer",
		},
		{
			ID:          "cta-banner",
			Name:        "Call to Action Banner",
			Type:        models.SectionCTA,
			Description: "Full-width banner with call to action",
			Thumbnail:   "/templates/cta-banner.jpg",
			DefaultData: models.CTAData{
				Title:       "Ready to Get Started?",
				Description: "Join thousands of satisfied customers",
				PrimaryCTA:  cta("Start Now", "/signup", "primary"),
			},
			IsReusable: true,
			Category:   "special",
		},
	}
}
