package wiki

// DefaultQueries is the curated list of topics used to search for interesting articles
var DefaultQueries = []string{
	// history
	"ancient civilization", "historical battle", "revolution", "medieval period",
	"renaissance", "world war", "empire", "dynasty", "archeological discovery",
	"historical figure", "ancient wonder", "historical monument",

	// places and geography
	"mountain", "volcano", "desert", "rainforest", "ocean", "island",
	"national park", "UNESCO world heritage", "ancient city", "landmark",
	"natural wonder", "geological formation", "canyon", "waterfall",

	// people
	"scientist", "explorer", "inventor", "philosopher", "artist",
	"composer", "mathematician", "astronomer", "naturalist", "pioneer",

	// science
	"scientific discovery", "space exploration", "particle physics",
	"astronomy", "biology", "chemistry", "geology", "paleontology",
	"evolution", "quantum", "cosmos", "dinosaur", "extinct species",

	// culture
	"mythology", "legend", "ancient ritual", "archaeological site",
	"mysterious", "unexplained phenomenon", "cultural tradition",
	"architectural marvel", "engineering feat", "ancient technology",
}
