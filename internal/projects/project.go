package projects

// Project is a repository shown on the work page. The JSON shape follows the
// GitHub repository objects served by the project API; unknown keys are ignored.
type Project struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	SourceURL   string `json:"html_url"`
	HomepageURL string `json:"homepage"`
	Stars       int    `json:"stargazers_count,omitempty"`
}

// fallbackProjects is shown whenever live data cannot be obtained.
var fallbackProjects = []Project{
	{
		ID:          1,
		Name:        "Fake Job Detection System",
		Description: "An AI/ML-based system that detects fake job postings using NLP techniques and supervised learning models.",
		Language:    "Python",
		SourceURL:   "https://github.com/harshlostagainn/fake-job-detector",
	},
	{
		ID:          2,
		Name:        "Student Performance Prediction",
		Description: "Machine learning project to analyze and predict student academic performance using real-world datasets.",
		Language:    "Python",
		SourceURL:   "https://github.com/harshlostagainn/student-performance-ai",
	},
	{
		ID:          3,
		Name:        "Weather API Application",
		Description: "A simple weather web application that fetches and displays real-time weather data using public APIs.",
		Language:    "HTML",
		SourceURL:   "https://github.com/harshlostagainn/WeatherAPI",
	},
	{
		ID:          4,
		Name:        "HarshLostAgain GitHub Profile",
		Description: "My personal GitHub profile repository highlighting interests in AI/ML, Quantum Computing, Chess, and Mathematics.",
		SourceURL:   "https://github.com/harshlostagainn/harshlostagainn",
	},
}

// Fallback returns a fresh copy of the fixed project list.
func Fallback() []Project {
	out := make([]Project, len(fallbackProjects))
	copy(out, fallbackProjects)
	return out
}
