package domain

// Client is the renting company's legal and banking identity. Every field is
// optional; an empty string means unset.
type Client struct {
	CompanyName          string `json:"companyName"`
	INN                  string `json:"inn"` // tax id
	KPP                  string `json:"kpp"` // registration code
	LegalAddress         string `json:"legalAddress"`
	ContactPerson        string `json:"contactPerson"`
	Phone                string `json:"phone"`
	Email                string `json:"email"`
	BankName             string `json:"bankName"`
	AccountNumber        string `json:"accountNumber"`
	CorrespondentAccount string `json:"correspondentAccount"`
	BIK                  string `json:"bik"` // bank routing code
}

// IsEmpty reports whether no profile has been saved
func (c Client) IsEmpty() bool {
	return c == Client{}
}
