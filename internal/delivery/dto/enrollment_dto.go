package dto

// Response DTOs

type ClientProgramsResponse struct {
	Programs []ProgramResponse `json:"programs"`
	Total    int               `json:"total"`
}

type ProgramClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
	Total   int              `json:"total"`
}
