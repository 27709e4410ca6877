package catalog

import "webnest/models"

func fp(v float64) *float64 { return &v }

// services is the live pricing catalog. LocalPrice (TND) and EuroPrice
// are hand-tuned business amounts, not derived from the exchange rate;
// keep them in sync manually when rates move.
var services = []models.Service{
	{
		ID:           "landing-page",
		Title:        "Landing Page",
		Description:  "Single-page site with a hero section, services overview and a contact form.",
		BasePrice:    500,
		LocalPrice:   fp(1550),
		EuroPrice:    fp(460),
		DeliveryTime: "1 week",
		Features: []models.Feature{
			{ID: "responsive", Name: "Responsive design", Description: "Looks right on phone, tablet and desktop.", Price: 0, Category: models.FeatureCore},
			{ID: "contact-form", Name: "Contact form", Description: "Lead capture wired to your inbox.", Price: 0, Category: models.FeatureCore},
			{ID: "seo-setup", Name: "SEO setup", Description: "Metadata, sitemap and search-console registration.", Price: 120, Category: models.FeatureAddon},
			{ID: "copywriting", Name: "Copywriting", Description: "Professional copy for every section.", Price: 150, Category: models.FeatureAddon},
			{ID: "multilingual", Name: "Extra language", Description: "A second language version of the page.", Price: 200, Category: models.FeatureAddon},
		},
	},
	{
		ID:           "business-website",
		Title:        "Business Website",
		Description:  "Multi-page company site with a CMS so your team can edit content.",
		BasePrice:    1200,
		LocalPrice:   fp(3700),
		DeliveryTime: "2-3 weeks",
		Features: []models.Feature{
			{ID: "cms", Name: "Content management", Description: "Edit pages without touching code.", Price: 0, Category: models.FeatureCore},
			{ID: "responsive", Name: "Responsive design", Description: "Looks right on every screen.", Price: 0, Category: models.FeatureCore},
			{ID: "blog", Name: "Blog module", Description: "Publishing workflow with categories and tags.", Price: 250, Category: models.FeatureAddon},
			{ID: "booking", Name: "Appointment booking", Description: "Calendar with email confirmations.", Price: 350, Category: models.FeatureAddon},
			{ID: "analytics", Name: "Analytics dashboard", Description: "Traffic and conversion reporting.", Price: 180, Category: models.FeatureAddon},
		},
	},
	{
		ID:           "ecommerce-store",
		Title:        "E-commerce Store",
		Description:  "Online store with product catalog, cart and payment integration.",
		BasePrice:    2500,
		LocalPrice:   fp(7750),
		EuroPrice:    fp(2300),
		DeliveryTime: "4-6 weeks",
		Features: []models.Feature{
			{ID: "catalog", Name: "Product catalog", Description: "Products, variants and inventory.", Price: 0, Category: models.FeatureCore},
			{ID: "payments", Name: "Payment integration", Description: "Card and local payment methods.", Price: 0, Category: models.FeatureCore},
			{ID: "shipping", Name: "Shipping rules", Description: "Zones, carriers and rate tables.", Price: 300, Category: models.FeatureAddon},
			{ID: "coupons", Name: "Coupons & promotions", Description: "Discount codes and seasonal campaigns.", Price: 200, Category: models.FeatureAddon},
			{ID: "accounts", Name: "Customer accounts", Description: "Order history and saved addresses.", Price: 400, Category: models.FeatureAddon},
			{ID: "multilingual", Name: "Extra language", Description: "A second storefront language.", Price: 350, Category: models.FeatureAddon},
		},
	},
	{
		ID:           "web-app",
		Title:        "Custom Web Application",
		Description:  "Bespoke application built around your workflow, from dashboards to portals.",
		BasePrice:    4000,
		DeliveryTime: "6-10 weeks",
		Features: []models.Feature{
			{ID: "auth", Name: "User accounts", Description: "Sign-up, roles and permissions.", Price: 0, Category: models.FeatureCore},
			{ID: "api", Name: "REST API", Description: "Documented API for integrations.", Price: 600, Category: models.FeatureAddon},
			{ID: "reports", Name: "Reporting module", Description: "Exportable charts and summaries.", Price: 450, Category: models.FeatureAddon},
			{ID: "notifications", Name: "Email notifications", Description: "Transactional email on key events.", Price: 250, Category: models.FeatureAddon},
		},
	},
}

var projects = []models.Project{
	{ID: "medina-crafts", Title: "Medina Crafts", Description: "E-commerce store for a Tunisian artisan collective.", Tags: []string{"ecommerce", "nextjs"}, URL: "https://medinacrafts.tn", Year: 2025},
	{ID: "clinique-azur", Title: "Clinique Azur", Description: "Appointment booking site for a private clinic.", Tags: []string{"booking", "cms"}, Year: 2024},
	{ID: "sahara-tours", Title: "Sahara Tours", Description: "Multilingual tour-operator site with itinerary builder.", Tags: []string{"travel", "i18n"}, URL: "https://saharatours.example", Year: 2024},
	{ID: "fintech-dash", Title: "Fintech Dashboard", Description: "Analytics portal for a payments startup.", Tags: []string{"webapp", "charts"}, Year: 2023},
}

var courses = []models.Course{
	{ID: "modern-web-dev", Title: "Modern Web Development", Description: "From HTML to deployed full-stack apps in twelve weeks.", Duration: "12 weeks", Price: 350, EnrollURL: "https://courses.webnest.tn/modern-web-dev"},
	{ID: "freelance-launchpad", Title: "Freelance Launchpad", Description: "Pricing, clients and contracts for independent developers.", Duration: "4 weeks", Price: 120},
}

var testimonials = []models.Testimonial{
	{Quote: "Delivered our store two weeks early and sales doubled within a month.", Author: "Sonia M.", Role: "Founder", Company: "Medina Crafts"},
	{Quote: "Patient, precise, and the booking system just works.", Author: "Dr. Karim B.", Role: "Director", Company: "Clinique Azur"},
	{Quote: "The course paid for itself with my first client.", Author: "Yassine T.", Role: "Student"},
}
