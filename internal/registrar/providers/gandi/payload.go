package gandi

import "github.com/tidwall/gjson"

type orderRequest struct {
	FQDN      string `json:"fqdn"`
	Owner     owner  `json:"owner"`
	TLDPeriod string `json:"tld_period"`
}

type owner struct {
	Email      string `json:"email"`
	Given      string `json:"given"`
	Family     string `json:"family"`
	StreetAddr string `json:"streetaddr"`
	Zip        string `json:"zip"`
	City       string `json:"city"`
	State      string `json:"state"`
	Phone      string `json:"phone"`
	Country    string `json:"country"`
	Type       string `json:"type"`
}

// ownerFromProfile maps the account profile onto the registrant contact.
func ownerFromProfile(profile gjson.Result) owner {
	return owner{
		Email:      profile.Get("email").String(),
		Given:      profile.Get("firstname").String(),
		Family:     profile.Get("lastname").String(),
		StreetAddr: profile.Get("streetaddr").String(),
		Zip:        profile.Get("zip").String(),
		City:       profile.Get("city").String(),
		State:      profile.Get("state").String(),
		Phone:      profile.Get("phone").String(),
		Country:    profile.Get("country").String(),
		Type:       "individual",
	}
}
