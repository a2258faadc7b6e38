package corrections

// adjacentKeywords are neighbouring topics worth adding for each domain or bucket.
var adjacentKeywords = map[string][]string{
	"frontend":         {"typescript", "nextjs", "testing library", "cypress", "storybook", "accessibility", "performance optimization", "pwa"},
	"backend":          {"graphql", "microservices", "message queue", "caching", "rate limiting", "api documentation", "swagger"},
	"fullstack":        {"system design", "scalability", "load balancing", "caching strategies", "api design"},
	"data_science":     {"feature engineering", "statistical analysis", "a/b testing", "data storytelling", "business intelligence"},
	"machine_learning": {"mlops", "model deployment", "hyperparameter tuning", "experiment tracking", "model monitoring"},
	"data_engineering": {"data modeling", "data governance", "data quality", "orchestration", "real-time processing"},
	"devops":           {"gitops", "service mesh", "chaos engineering", "observability", "incident management"},
	"cloud":            {"cost optimization", "security best practices", "high availability", "disaster recovery", "multi-region"},
	"database":         {"query optimization", "database migration", "data modeling", "backup strategies", "performance tuning"},
	"mobile":           {"state management", "offline support", "push notifications", "app performance", "deep linking"},
	"security":         {"threat modeling", "security audit", "vulnerability assessment", "incident response", "compliance"},
	"blockchain":       {"smart contract security", "gas optimization", "token standards", "defi protocols"},
	"game_dev":         {"game physics", "ai pathfinding", "multiplayer networking", "optimization"},
	"embedded":         {"real-time systems", "power management", "communication protocols", "debugging"},
	"qa_testing":       {"test strategy", "test coverage", "ci integration", "performance testing", "security testing"},

	"web":          {"typescript", "unit testing", "jest", "oauth", "jwt", "caching", "performance", "accessibility"},
	"data_ml":      {"feature engineering", "cross-validation", "model evaluation", "pipeline", "mlops", "data preprocessing"},
	"devops_cloud": {"ci/cd", "terraform", "monitoring", "autoscaling", "cost optimization", "logging"},
	"db":           {"indexing", "query optimization", "normalization", "transactions", "replication"},
}

// highValueKeywords are the skills recruiters search for first, most valuable first.
var highValueKeywords = map[string][]string{
	"frontend":         {"react", "typescript", "nextjs", "vue", "tailwind", "graphql"},
	"backend":          {"node", "python", "graphql", "microservices", "redis", "kafka"},
	"fullstack":        {"typescript", "graphql", "docker", "aws", "system design"},
	"data_science":     {"python", "sql", "pandas", "tableau", "power bi", "statistics"},
	"machine_learning": {"python", "tensorflow", "pytorch", "mlops", "llm", "nlp"},
	"data_engineering": {"spark", "airflow", "kafka", "snowflake", "dbt"},
	"devops":           {"kubernetes", "terraform", "aws", "ci/cd", "prometheus"},
	"cloud":            {"aws", "azure", "gcp", "serverless", "kubernetes"},
	"database":         {"postgresql", "mongodb", "redis", "elasticsearch"},
	"mobile":           {"react native", "flutter", "kotlin", "swift"},
	"security":         {"penetration testing", "owasp", "encryption", "siem"},
	"blockchain":       {"solidity", "web3", "smart contract", "defi"},
	"game_dev":         {"unity", "unreal", "c++", "shader"},
	"embedded":         {"c", "c++", "rtos", "arduino"},
	"qa_testing":       {"selenium", "cypress", "jest", "api testing"},

	"web":          {"react", "node", "typescript", "graphql", "rest"},
	"data_ml":      {"python", "sql", "pandas", "numpy", "sklearn", "tensorflow", "power bi", "tableau"},
	"devops_cloud": {"aws", "docker", "kubernetes", "ci/cd"},
	"db":           {"postgres", "mongodb", "redis"},
}

// neutralKeywords are suggested when no domain can be inferred.
var neutralKeywords = []string{"sql", "git", "python", "javascript", "docker"}

// projectExamples are starter project ideas per bucket; the first is used in suggestions.
var projectExamples = map[string][]string{
	"web": {
		"Build a full-stack web application with user authentication",
		"Create a REST API with database integration",
		"Develop a responsive e-commerce platform",
		"Build a real-time chat application with WebSockets",
	},
	"data_ml": {
		"Create a machine learning model for predictive analytics",
		"Build a data visualization dashboard",
		"Develop an ETL pipeline for data processing",
		"Implement a recommendation system",
	},
	"devops_cloud": {
		"Set up CI/CD pipeline with automated testing",
		"Deploy containerized application to cloud platform",
		"Implement infrastructure as code with monitoring",
		"Create automated backup and disaster recovery system",
	},
	"db": {
		"Design and optimize a database schema for scalability",
		"Build a data migration tool with performance optimization",
		"Create a database monitoring and query optimization system",
		"Implement database replication and caching strategy",
	},
	"mobile": {
		"Build a cross-platform mobile app with native features",
		"Create a mobile app with offline-first architecture",
		"Develop a location-based service mobile application",
		"Build a mobile app with push notifications and real-time updates",
	},
}

// actionVerbs are suggested openers for résumé bullets.
var actionVerbs = []string{
	"Designed", "Developed", "Implemented", "Optimized", "Automated", "Refactored", "Led", "Collaborated", "Deployed",
	"Architected", "Integrated", "Scaled", "Reduced", "Improved", "Achieved", "Delivered", "Analyzed", "Validated",
}
