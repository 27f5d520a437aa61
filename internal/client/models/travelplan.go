package models

// TravelPlan is a remotely stored plan. OwnerUsername is fixed at creation.
type TravelPlan struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Country       string `json:"country"`
	OwnerUsername string `json:"username"`
}

// Countries offered by the travel plan form.
var Countries = []string{
	"United States",
	"Canada",
	"United Kingdom",
	"Australia",
	"Germany",
	"France",
	"Japan",
	"China",
	"Brazil",
	"India",
}

// TravelPlanInput holds the user-editable fields of a plan.
type TravelPlanInput struct {
	Name        string
	Description string
	Country     string
}

// Input returns the editable part of p, used to prefill the edit form.
func (p TravelPlan) Input() TravelPlanInput {
	return TravelPlanInput{Name: p.Name, Description: p.Description, Country: p.Country}
}

// TravelPlanPayload is the request body for create and update.
type TravelPlanPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Country     string `json:"country"`
	Username    string `json:"username"`
}

// Payload attaches the owner to the input.
func (in TravelPlanInput) Payload(owner string) TravelPlanPayload {
	return TravelPlanPayload{
		Name:        in.Name,
		Description: in.Description,
		Country:     in.Country,
		Username:    owner,
	}
}
