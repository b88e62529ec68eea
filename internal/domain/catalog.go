package domain

var defaultCategories = []string{
	"NLP",
	"Computer Vision",
	"Code Generation",
	"Data Analysis",
	"Automation",
	"Summarization",
	"Translation",
	"Recommendation",
}

var defaultAgents = []Agent{
	{
		ID:               1,
		Name:             "TextMaster Pro",
		ShortDescription: "Advanced natural language processing for content generation and analysis",
		FullDescription:  "TextMaster Pro is a cutting-edge NLP agent that excels in content generation, sentiment analysis, and text summarization. It leverages state-of-the-art transformer models to understand context and generate human-like text across various domains.",
		Category:         "NLP",
		Tags:             []string{"NLP", "Content Generation", "Sentiment Analysis"},
		Image:            "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=400",
		UseCases:         []string{"Blog writing", "Customer service automation", "Content moderation", "Report generation"},
		TechStack:        []string{"GPT-4", "BERT", "Python", "TensorFlow", "FastAPI"},
	},
	{
		ID:               2,
		Name:             "VisionAI Scanner",
		ShortDescription: "Real-time image recognition and object detection system",
		FullDescription:  "VisionAI Scanner provides advanced computer vision capabilities including object detection, image classification, and visual content analysis. Perfect for retail, security, and manufacturing applications.",
		Category:         "Computer Vision",
		Tags:             []string{"Computer Vision", "Object Detection", "Image Analysis"},
		Image:            "https://images.unsplash.com/photo-1485827404703-89b55fcc595e?w=400",
		UseCases:         []string{"Quality control", "Security monitoring", "Inventory management", "Medical imaging"},
		TechStack:        []string{"YOLO v8", "OpenCV", "PyTorch", "Docker", "Redis"},
	},
	{
		ID:               3,
		Name:             "CodeGenius Assistant",
		ShortDescription: "Intelligent code generation and debugging companion",
		FullDescription:  "CodeGenius Assistant helps developers write better code faster with intelligent suggestions, automated testing, and bug detection across multiple programming languages.",
		Category:         "Code Generation",
		Tags:             []string{"Code Generation", "Debugging", "Testing"},
		Image:            "https://images.unsplash.com/photo-1555066931-4365d14bab8c?w=400",
		UseCases:         []string{"Code completion", "Bug fixing", "Test generation", "Code review"},
		TechStack:        []string{"GitHub Copilot", "ESLint", "Jest", "Node.js", "TypeScript"},
	},
	{
		ID:               4,
		Name:             "DataMiner Analytics",
		ShortDescription: "Powerful data analysis and pattern recognition engine",
		FullDescription:  "DataMiner Analytics transforms raw data into actionable insights through advanced statistical analysis, machine learning, and predictive modeling capabilities.",
		Category:         "Data Analysis",
		Tags:             []string{"Data Analysis", "Machine Learning", "Predictive Modeling"},
		Image:            "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=400",
		UseCases:         []string{"Business intelligence", "Fraud detection", "Market analysis", "Risk assessment"},
		TechStack:        []string{"Pandas", "Scikit-learn", "Apache Spark", "PostgreSQL", "Grafana"},
	},
	{
		ID:               5,
		Name:             "WorkflowBot Pro",
		ShortDescription: "Intelligent automation for business processes",
		FullDescription:  "WorkflowBot Pro streamlines business operations through intelligent automation, workflow optimization, and seamless integration with existing systems.",
		Category:         "Automation",
		Tags:             []string{"Automation", "Workflow", "Integration"},
		Image:            "https://images.unsplash.com/photo-1518770660439-4636190af475?w=400",
		UseCases:         []string{"Email automation", "Data entry", "Report generation", "System integration"},
		TechStack:        []string{"RPA", "Zapier", "Microsoft Power Automate", "Python", "REST APIs"},
	},
	{
		ID:               6,
		Name:             "SummaryGenie",
		ShortDescription: "Intelligent document and content summarization",
		FullDescription:  "SummaryGenie creates concise, accurate summaries of long documents, articles, and multimedia content while preserving key information and context.",
		Category:         "Summarization",
		Tags:             []string{"Summarization", "Document Processing", "Content Analysis"},
		Image:            "https://images.unsplash.com/photo-1456324504439-367cee3b3c32?w=400",
		UseCases:         []string{"Research papers", "Meeting notes", "News articles", "Legal documents"},
		TechStack:        []string{"BERT", "T5", "spaCy", "NLTK", "Flask"},
	},
	{
		ID:               7,
		Name:             "LinguaBot Translator",
		ShortDescription: "Multi-language translation with cultural context",
		FullDescription:  "LinguaBot Translator provides accurate, contextually-aware translations across 100+ languages with cultural nuance preservation and domain-specific terminology.",
		Category:         "Translation",
		Tags:             []string{"Translation", "Multi-language", "Cultural Context"},
		Image:            "https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5?w=400",
		UseCases:         []string{"Document translation", "Real-time chat", "Website localization", "Legal translation"},
		TechStack:        []string{"Google Translate API", "mBART", "FastText", "Django", "MongoDB"},
	},
	{
		ID:               8,
		Name:             "RecoEngine Smart",
		ShortDescription: "Personalized recommendation system for e-commerce",
		FullDescription:  "RecoEngine Smart delivers highly personalized product and content recommendations using advanced machine learning algorithms and user behavior analysis.",
		Category:         "Recommendation",
		Tags:             []string{"Recommendation", "Personalization", "E-commerce"},
		Image:            "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=400",
		UseCases:         []string{"Product recommendations", "Content curation", "Marketing campaigns", "Cross-selling"},
		TechStack:        []string{"Collaborative Filtering", "TensorFlow Recommenders", "Apache Kafka", "Elasticsearch", "React"},
	},
}

// DefaultAgents returns a copy of the built-in catalog.
func DefaultAgents() []Agent {
	agents := make([]Agent, 0, len(defaultAgents))
	for _, agent := range defaultAgents {
		agents = append(agents, agent.Clone())
	}
	return agents
}

func DefaultCategories() []string {
	return append([]string(nil), defaultCategories...)
}
