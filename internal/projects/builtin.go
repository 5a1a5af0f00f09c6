package projects

// Builtin returns the compiled-in catalog shown on the site.
func Builtin() *Catalog {
	c, err := NewCatalog(builtinRecords...)
	if err != nil {
		panic("projects: invalid builtin catalog: " + err.Error())
	}
	return c
}

var builtinRecords = []Record{
	{
		ID:          "kapray",
		Title:       "KaprayOfficial E-commerce Platform",
		ImageClass:  "ecommerce-bg",
		Category:    "web",
		Description: "A comprehensive e-commerce solution built for KaprayOfficial, a leading fashion retailer in Pakistan. The platform features modern design, seamless user experience, and robust backend functionality.",
		Challenge:   "The client needed a complete e-commerce solution that could handle high traffic, provide excellent user experience, and integrate with local payment gateways in Pakistan.",
		Solution:    "Developed a full-stack e-commerce platform using React for the frontend and Node.js for the backend. Implemented features like product catalog, shopping cart, user authentication, order management, and payment integration.",
		Results: []string{
			"300% increase in online sales",
			"50% reduction in cart abandonment",
			"40% improvement in page load speed",
			"95% customer satisfaction rating",
		},
		Technologies: []string{"React", "Node.js", "MongoDB", "Stripe", "AWS"},
		Duration:     "3 months",
		Role:         "Full-Stack Developer & Digital Marketing Strategist",
	},
	{
		ID:          "marketing",
		Title:       "Digital Marketing Campaign",
		ImageClass:  "marketing-bg",
		Category:    "marketing",
		Description: "A comprehensive digital marketing campaign that transformed a local business's online presence and drove significant growth in brand awareness and sales.",
		Challenge:   "The client had minimal online presence and was struggling to reach their target audience effectively. They needed a complete digital marketing overhaul.",
		Solution:    "Implemented a multi-channel digital marketing strategy including SEO optimization, social media marketing, Google Ads campaigns, and content marketing. Created engaging content and optimized all digital touchpoints.",
		Results: []string{
			"300% increase in brand visibility",
			"250% growth in website traffic",
			"180% increase in lead generation",
			"400% ROI on marketing spend",
		},
		Technologies: []string{"Google Ads", "Facebook Ads", "SEO Tools", "Analytics", "Content Management"},
		Duration:     "6 months",
		Role:         "Digital Marketing Strategist",
	},
	{
		ID:          "taskapp",
		Title:       "Task Management Mobile App",
		ImageClass:  "webapp-bg",
		Category:    "mobile",
		Description: "A cross-platform mobile application designed for team collaboration and project management. Features real-time updates, task tracking, and team communication tools.",
		Challenge:   "Teams needed a mobile-first solution for project management that could work offline and sync across devices with real-time collaboration features.",
		Solution:    "Built a React Native application with Firebase backend for real-time data synchronization. Implemented features like task creation, assignment, progress tracking, team chat, and push notifications.",
		Results: []string{
			"90% improvement in team productivity",
			"60% reduction in project delays",
			"85% user adoption rate",
			"4.8/5 app store rating",
		},
		Technologies: []string{"React Native", "Firebase", "Redux", "Push Notifications", "Offline Storage"},
		Duration:     "4 months",
		Role:         "Mobile App Developer",
	},
	{
		ID:          "restaurant",
		Title:       "Restaurant Ordering System",
		ImageClass:  "restaurant-bg",
		Category:    "web",
		Description: "An online food ordering platform that connects local restaurants with customers, featuring menu management, order tracking, and delivery integration.",
		Challenge:   "Local restaurants needed a digital solution to manage online orders, track deliveries, and provide customers with a seamless ordering experience.",
		Solution:    "Developed a comprehensive web application using Vue.js and Laravel. Integrated payment gateways, real-time order tracking, inventory management, and delivery partner APIs.",
		Results: []string{
			"200% increase in online orders",
			"35% reduction in order errors",
			"45% improvement in delivery time",
			"92% customer satisfaction",
		},
		Technologies: []string{"Vue.js", "Laravel", "MySQL", "Payment Gateway", "Maps API"},
		Duration:     "2.5 months",
		Role:         "Full-Stack Developer",
	},
	{
		ID:          "portfolio",
		Title:       "Professional Portfolio Website",
		ImageClass:  "portfolio-bg",
		Category:    "web",
		Description: "A modern, responsive portfolio website showcasing advanced web development skills with smooth animations, dark mode, and optimized performance.",
		Challenge:   "Create a portfolio that stands out from the competition while demonstrating technical skills and providing excellent user experience across all devices.",
		Solution:    "Built a custom portfolio using modern HTML5, CSS3, and JavaScript with advanced animations, responsive design, and performance optimizations. Implemented dark/light mode toggle and accessibility features.",
		Results: []string{
			"95+ Lighthouse performance score",
			"100% mobile responsiveness",
			"50% increase in client inquiries",
			"WCAG 2.1 AA accessibility compliance",
		},
		Technologies: []string{"HTML5", "CSS3", "JavaScript", "GSAP", "Intersection Observer"},
		Duration:     "1 month",
		Role:         "Frontend Developer & Designer",
	},
	{
		ID:          "seo",
		Title:       "SEO Optimization Project",
		ImageClass:  "seo-bg",
		Category:    "marketing",
		Description: "A comprehensive SEO strategy implementation that dramatically improved a local business website's search engine rankings and organic traffic.",
		Challenge:   "The client's website had poor search engine visibility, slow loading times, and was not ranking for relevant keywords in their industry.",
		Solution:    "Conducted comprehensive SEO audit, implemented technical SEO improvements, optimized on-page content, built high-quality backlinks, and created content strategy aligned with search intent.",
		Results: []string{
			"250% increase in organic traffic",
			"180% improvement in keyword rankings",
			"65% increase in conversion rate",
			"Page 1 rankings for 15+ target keywords",
		},
		Technologies: []string{"Technical SEO", "Content Strategy", "Link Building", "Analytics", "Keyword Research"},
		Duration:     "4 months",
		Role:         "SEO Specialist & Content Strategist",
	},
}
