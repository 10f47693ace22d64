package content

var (
	Greeting = "Hey there, I'm Harsh! 👋"

	AboutIntro = `I’m an MCA (AI/ML) student who enjoys building intelligent systems
	and solving real-world problems using data and code.`

	// AboutWork is split around the word that wiggles on hover.
	AboutWorkBefore = `I actively work on hands-on projects in machine learning, NLP, and
	data-driven applications, focusing on clean implementation and practical impact. I enjoy`
	AboutWorkHighlight = "experimenting"
	AboutWorkAfter     = `with models, learning how things work under the hood, and turning
	ideas into usable solutions.`

	TimelineSubtitle = "Timeline of my journey"
	TimelinePrompt   = "$ git log --oneline --graph"

	UsesIntro = `Tools, apps, and hardware I use daily while building projects,
	learning AI/ML, and writing code.`
	UsesOutro = "This page evolves as my workflow evolves."
)
