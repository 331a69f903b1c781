package models

import "encoding/json"

// WizardStepRequest carries the inputs collected at the current wizard step.
// All fields are optional; only the ones relevant to the step are read.
type WizardStepRequest struct {
	Recipient     string `json:"recipient,omitempty"`
	RecipientName string `json:"recipient_name,omitempty"`
	SenderName    string `json:"sender_name,omitempty"`
	Title         string `json:"title,omitempty"`
	WritingStyle  string `json:"writing_style,omitempty"`
}

// UpdatePageRequest is the wire form of a partial page update. The photo_id
// field is three-way: absent means "leave unchanged", JSON null means "clear
// the photo", a string means "assign this photo". Caption is two-way: absent
// means "leave unchanged".
type UpdatePageRequest struct {
	PhotoID OptionalString `json:"photo_id"`
	Caption *string        `json:"caption"`
}

// OptionalString distinguishes an absent JSON field from an explicit null.
// Set is true whenever the field appeared in the payload; Value is nil for an
// explicit null.
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

func (o OptionalString) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// PlaceOrderRequest submits the checkout form. Address is free text; the only
// validation is non-emptiness.
type PlaceOrderRequest struct {
	ProjectID string `json:"project_id"`
	Address   string `json:"address"`
}
