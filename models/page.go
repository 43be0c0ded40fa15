package models

// SecretPage is a bounded slice of the secret list plus a flag telling the
// caller whether more records are available past this page.
type SecretPage struct {
	Data    []Secret `json:"data"`
	HasMore bool     `json:"has_more"`
}
