package calendar

// swagger:parameters monthGrid
type _ struct {
	// in: path
	// required: true
	Year uint `json:"year"`
	// in: path
	// required: true
	Month uint `json:"month"`
}

// swagger:response Grid
type _ struct {
	//in: body
	_ Grid
}
