package contracts

type MessageResponse struct {
	Message string `json:"message"`
}

type OFXImportResponse struct {
	Message  string `json:"message"`
	Imported int    `json:"imported"`
}
