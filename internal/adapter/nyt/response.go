package nyt

// gameData mirrors the subset of the NYT page's window.gameData blob that
// the engine consumes.
type gameData struct {
	Today todayGame `json:"today"`
}

type todayGame struct {
	PrintDate    string   `json:"printDate"`
	CenterLetter string   `json:"centerLetter"`
	OuterLetters []string `json:"outerLetters"`
	Pangrams     []string `json:"pangrams"`
	Answers      []string `json:"answers"`
}
