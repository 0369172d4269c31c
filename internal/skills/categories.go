// Package skills groups flat skill strings into named categories for the skills section.
package skills

// Category names in canonical emission order
const (
	CategoryLanguages = "Languages"
	CategoryFrontend  = "Frontend"
	CategoryBackend   = "Backend"
	CategoryMobile    = "Mobile"
	CategoryDatabase  = "Database"
	CategoryCloud     = "Cloud"
	CategoryDevOps    = "DevOps"
	CategoryData      = "Data & ML"
	CategoryTesting   = "Testing"
	CategoryTools     = "Tools"
	CategoryOther     = "Other"
)

// CanonicalOrder is the fixed order categories are emitted in
var CanonicalOrder = []string{
	CategoryLanguages,
	CategoryFrontend,
	CategoryBackend,
	CategoryMobile,
	CategoryDatabase,
	CategoryCloud,
	CategoryDevOps,
	CategoryData,
	CategoryTesting,
	CategoryTools,
	CategoryOther,
}

// categoryAliases maps lowercased user-supplied prefixes to canonical names
var categoryAliases = map[string]string{
	"languages":             CategoryLanguages,
	"language":              CategoryLanguages,
	"programming":           CategoryLanguages,
	"programming languages": CategoryLanguages,
	"lang":                  CategoryLanguages,
	"frontend":              CategoryFrontend,
	"front-end":             CategoryFrontend,
	"front end":             CategoryFrontend,
	"ui":                    CategoryFrontend,
	"web":                   CategoryFrontend,
	"backend":               CategoryBackend,
	"back-end":              CategoryBackend,
	"back end":              CategoryBackend,
	"server":                CategoryBackend,
	"frameworks":            CategoryBackend,
	"mobile":                CategoryMobile,
	"database":              CategoryDatabase,
	"databases":             CategoryDatabase,
	"db":                    CategoryDatabase,
	"data stores":           CategoryDatabase,
	"storage":               CategoryDatabase,
	"cloud":                 CategoryCloud,
	"cloud platforms":       CategoryCloud,
	"observability":         CategoryCloud,
	"devops":                CategoryDevOps,
	"dev ops":               CategoryDevOps,
	"infrastructure":        CategoryDevOps,
	"infra":                 CategoryDevOps,
	"ci/cd":                 CategoryDevOps,
	"data":                  CategoryData,
	"data & ml":             CategoryData,
	"ml":                    CategoryData,
	"ai":                    CategoryData,
	"machine learning":      CategoryData,
	"data science":          CategoryData,
	"testing":               CategoryTesting,
	"qa":                    CategoryTesting,
	"tools":                 CategoryTools,
	"tooling":               CategoryTools,
	"other":                 CategoryOther,
}

type keywordRule struct {
	category string
	keywords []string
}

// keywordTable is matched in order; the first category with a matching keyword wins.
// Keywords shorter than three characters only match a whole skill name.
var keywordTable = []keywordRule{
	{CategoryMobile, []string{"react native", "flutter", "android", "ios", "swiftui", "xamarin", "ionic"}},
	{CategoryLanguages, []string{
		"javascript", "typescript", "python", "golang", "java", "kotlin", "swift", "rust",
		"ruby", "php", "scala", "haskell", "elixir", "erlang", "perl", "clojure", "c++", "c#",
		"go", "c", "r", "lua", "bash", "shell",
	}},
	{CategoryFrontend, []string{
		"react", "vue", "angular", "svelte", "next.js", "nuxt", "html", "css", "sass",
		"tailwind", "redux", "webpack", "vite", "jquery", "bootstrap",
	}},
	{CategoryBackend, []string{
		"node", "express", "django", "flask", "fastapi", "spring", "rails", "laravel",
		"graphql", "grpc", "rest api", ".net", "nestjs", "microservices",
	}},
	{CategoryDatabase, []string{
		"sql", "postgres", "mysql", "mariadb", "sqlite", "mongo", "redis", "cassandra",
		"dynamodb", "elasticsearch", "oracle", "neo4j", "couchdb", "firestore",
	}},
	{CategoryCloud, []string{
		"aws", "azure", "gcp", "google cloud", "cloudflare", "heroku", "lambda", "s3",
		"ec2", "serverless", "firebase", "vercel", "netlify",
	}},
	{CategoryDevOps, []string{
		"docker", "kubernetes", "k8s", "terraform", "ansible", "jenkins", "ci/cd", "helm",
		"github actions", "gitlab", "prometheus", "grafana", "nginx", "linux",
	}},
	{CategoryData, []string{
		"machine learning", "tensorflow", "pytorch", "pandas", "numpy", "spark", "kafka",
		"airflow", "scikit", "hadoop", "tableau", "llm", "nlp",
	}},
	{CategoryTesting, []string{
		"jest", "pytest", "junit", "cypress", "selenium", "playwright", "mocha", "testing",
		"tdd",
	}},
	{CategoryTools, []string{"git", "jira", "figma", "postman", "vscode", "vim", "webstorm", "notion"}},
}
