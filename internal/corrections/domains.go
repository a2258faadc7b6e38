package corrections

import (
	"sort"

	"github.com/jonathan/resume-ats/internal/skills"
)

// Keyword weights within a domain bucket.
const (
	coreWeight      = 3.0
	secondaryWeight = 2.0
	relatedWeight   = 1.0
	contextWeight   = 0.5

	// activeThreshold is the score a domain needs to count as detected.
	activeThreshold = 2.0
	// fullstackBoost is added to fullstack when frontend and backend both reach fullstackFloor.
	fullstackBoost = 5.0
	fullstackFloor = 4.0
)

type keywordSet map[string]struct{}

func newKeywordSet(words ...string) keywordSet {
	set := make(keywordSet, len(words))
	for _, w := range words {
		if norm := skills.NormalizeSkillText(w); norm != "" {
			set[norm] = struct{}{}
		}
	}
	return set
}

func (k keywordSet) has(s string) bool {
	_, ok := k[s]
	return ok
}

func union(sets ...keywordSet) keywordSet {
	out := keywordSet{}
	for _, s := range sets {
		for k := range s {
			out[k] = struct{}{}
		}
	}
	return out
}

// domain is a technical specialization with weighted keyword tiers.
type domain struct {
	name      string
	core      keywordSet
	secondary keywordSet
	related   keywordSet
}

var domains = []domain{
	{
		name:      "frontend",
		core:      newKeywordSet("react", "angular", "vue", "svelte", "nextjs", "next.js", "nuxt", "gatsby"),
		secondary: newKeywordSet("html", "css", "javascript", "typescript", "sass", "scss", "less", "tailwind", "bootstrap", "material ui", "chakra", "styled-components"),
		related:   newKeywordSet("webpack", "vite", "babel", "eslint", "prettier", "storybook", "jest", "cypress", "playwright", "redux", "zustand", "mobx", "graphql", "apollo", "responsive", "accessibility", "a11y", "pwa"),
	},
	{
		name:      "backend",
		core:      newKeywordSet("node", "express", "django", "flask", "fastapi", "spring", "spring boot", "rails", "laravel", "asp.net", ".net", "nestjs"),
		secondary: newKeywordSet("rest", "api", "graphql", "grpc", "microservices", "websocket", "socket.io"),
		related:   newKeywordSet("jwt", "oauth", "authentication", "authorization", "middleware", "orm", "sequelize", "prisma", "typeorm", "celery", "rabbitmq", "kafka"),
	},
	{
		name: "fullstack",
		core: newKeywordSet("mern", "mean", "lamp", "full stack", "fullstack"),
	},
	{
		name:      "data_science",
		core:      newKeywordSet("pandas", "numpy", "scikit-learn", "sklearn", "jupyter", "data analysis", "data science"),
		secondary: newKeywordSet("matplotlib", "seaborn", "plotly", "scipy", "statsmodels", "statistics", "regression", "classification"),
		related:   newKeywordSet("excel", "tableau", "power bi", "looker", "data visualization", "eda", "feature engineering", "a/b testing", "hypothesis testing"),
	},
	{
		name:      "machine_learning",
		core:      newKeywordSet("tensorflow", "pytorch", "keras", "machine learning", "ml", "deep learning", "neural network"),
		secondary: newKeywordSet("cnn", "rnn", "lstm", "transformer", "bert", "gpt", "llm", "nlp", "computer vision", "opencv"),
		related:   newKeywordSet("model training", "hyperparameter", "cross-validation", "mlops", "mlflow", "wandb", "huggingface", "langchain", "rag", "fine-tuning", "embedding"),
	},
	{
		name:      "data_engineering",
		core:      newKeywordSet("spark", "hadoop", "airflow", "data pipeline", "etl", "data engineering"),
		secondary: newKeywordSet("kafka", "flink", "beam", "dbt", "snowflake", "databricks", "redshift", "bigquery"),
		related:   newKeywordSet("data warehouse", "data lake", "batch processing", "stream processing", "parquet", "avro"),
	},
	{
		name:      "devops",
		core:      newKeywordSet("docker", "kubernetes", "k8s", "jenkins", "ci/cd", "devops", "terraform", "ansible"),
		secondary: newKeywordSet("helm", "argocd", "gitlab ci", "github actions", "circleci", "prometheus", "grafana", "elk", "datadog"),
		related:   newKeywordSet("infrastructure as code", "iac", "monitoring", "logging", "alerting", "site reliability", "sre", "bash", "shell", "linux"),
	},
	{
		name:      "cloud",
		core:      newKeywordSet("aws", "azure", "gcp", "google cloud", "cloud computing"),
		secondary: newKeywordSet("ec2", "s3", "lambda", "ecs", "eks", "rds", "dynamodb", "cloudformation", "azure functions", "cloud functions", "firebase"),
		related:   newKeywordSet("serverless", "iaas", "paas", "saas", "cloud native", "multi-cloud", "hybrid cloud", "cost optimization"),
	},
	{
		name:      "database",
		core:      newKeywordSet("sql", "mysql", "postgresql", "postgres", "mongodb", "oracle", "sql server"),
		secondary: newKeywordSet("redis", "elasticsearch", "cassandra", "dynamodb", "neo4j", "mariadb", "sqlite", "supabase"),
		related:   newKeywordSet("database design", "normalization", "indexing", "query optimization", "transactions", "acid", "replication", "sharding", "nosql"),
	},
	{
		name:      "mobile",
		core:      newKeywordSet("android", "ios", "react native", "flutter", "swift", "kotlin", "mobile development"),
		secondary: newKeywordSet("swiftui", "jetpack compose", "xamarin", "ionic", "cordova", "expo"),
		related:   newKeywordSet("mobile ui", "push notifications", "app store", "play store", "mobile testing", "responsive design"),
	},
	{
		name:      "security",
		core:      newKeywordSet("cybersecurity", "penetration testing", "ethical hacking", "security", "infosec"),
		secondary: newKeywordSet("owasp", "vulnerability", "encryption", "ssl", "tls", "firewall", "ids", "ips", "siem"),
		related:   newKeywordSet("authentication", "authorization", "oauth", "jwt", "xss", "sql injection", "csrf", "security audit", "compliance"),
	},
	{
		name:      "blockchain",
		core:      newKeywordSet("blockchain", "solidity", "ethereum", "web3", "smart contract"),
		secondary: newKeywordSet("defi", "nft", "dapp", "hardhat", "truffle", "metamask", "ipfs"),
		related:   newKeywordSet("cryptocurrency", "bitcoin", "consensus", "distributed ledger"),
	},
	{
		name:      "game_dev",
		core:      newKeywordSet("unity", "unreal", "game development", "godot", "game engine"),
		secondary: newKeywordSet("c#", "c++", "opengl", "directx", "vulkan", "shader"),
		related:   newKeywordSet("game design", "3d modeling", "blender", "animation", "physics engine"),
	},
	{
		name:      "embedded",
		core:      newKeywordSet("embedded", "arduino", "raspberry pi", "iot", "microcontroller", "firmware"),
		secondary: newKeywordSet("c", "c++", "rtos", "arm", "fpga", "verilog", "vhdl"),
		related:   newKeywordSet("hardware", "sensor", "actuator", "serial communication", "i2c", "spi", "uart"),
	},
	{
		name:      "qa_testing",
		core:      newKeywordSet("selenium", "testing", "qa", "quality assurance", "test automation"),
		secondary: newKeywordSet("cypress", "playwright", "jest", "mocha", "pytest", "junit", "testng"),
		related:   newKeywordSet("unit testing", "integration testing", "e2e testing", "tdd", "bdd", "postman", "api testing", "load testing", "jmeter"),
	},
}

func domainByName(name string) *domain {
	for i := range domains {
		if domains[i].name == name {
			return &domains[i]
		}
	}
	return nil
}

// bucket is one of the coarse legacy groupings used for gap analysis and
// extra recommendations. Order matters: a skill belongs to the first bucket
// that lists it.
type bucket struct {
	name     string
	keywords keywordSet
}

var buckets = func() []bucket {
	d := domainByName
	return []bucket{
		{"web", union(d("frontend").core, d("frontend").secondary, d("backend").core)},
		{"data_ml", union(d("data_science").core, d("machine_learning").core, d("data_engineering").core)},
		{"devops_cloud", union(d("devops").core, d("cloud").core)},
		{"db", union(d("database").core, d("database").secondary)},
		{"mobile", union(d("mobile").core, d("mobile").secondary)},
	}
}()

// bucketOf returns the first bucket containing skill, or "".
func bucketOf(skill string) string {
	for _, b := range buckets {
		if b.keywords.has(skill) {
			return b.name
		}
	}
	return ""
}

// DomainScore is the weighted evidence for one domain.
type DomainScore struct {
	Domain string  `json:"domain"`
	Score  float64 `json:"score"`
}

// InferDomains scores every domain against the recognized skills plus the
// free text of projects and internships, and returns the domains with a
// positive score, best first. Ties keep table order.
func InferDomains(recognized []string, contextText string) []DomainScore {
	have := newKeywordSet(recognized...)
	context := skills.TokenSet(contextText)

	scores := make(map[string]float64, len(domains))
	for _, d := range domains {
		score := 0.0
		for kw := range d.core {
			if have.has(kw) {
				score += coreWeight
			}
			if _, ok := context[kw]; ok {
				score += contextWeight
			}
		}
		for kw := range d.secondary {
			if have.has(kw) {
				score += secondaryWeight
			}
			if _, ok := context[kw]; ok {
				score += contextWeight
			}
		}
		for kw := range d.related {
			if have.has(kw) {
				score += relatedWeight
			}
		}
		scores[d.name] = score
	}

	if scores["frontend"] >= fullstackFloor && scores["backend"] >= fullstackFloor {
		scores["fullstack"] += fullstackBoost
	}

	out := make([]DomainScore, 0, len(domains))
	for _, d := range domains {
		if s := scores[d.name]; s > 0 {
			out = append(out, DomainScore{Domain: d.name, Score: s})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// activeDomains returns the names of domains scoring above activeThreshold, best first.
func activeDomains(scores []DomainScore) []string {
	var out []string
	for _, s := range scores {
		if s.Score > activeThreshold {
			out = append(out, s.Domain)
		}
	}
	return out
}
