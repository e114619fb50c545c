package api

type HealthResponse struct {
	Status  string `json:"status" description:"Service status"`
	Version string `json:"version" description:"API version"`
}

type PuzzleResponse struct {
	Year int    `json:"year" description:"Puzzle year"`
	Day  int    `json:"day" description:"Puzzle day (1-25)"`
	Name string `json:"name" description:"Puzzle title"`
}
