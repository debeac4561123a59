package entity

import "time"

// ProposalType distinguishes skills a user offers from skills they request.
type ProposalType string

const (
	ProposalOffer   ProposalType = "offer"
	ProposalRequest ProposalType = "request"
)

// Skill is a listing owned by a user and attached to a subcategory.
type Skill struct {
	ID               int64        `json:"id"`
	UserID           int64        `json:"userId"`
	SubcategoryID    int64        `json:"subcategoryId"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	TypeOfProposal   ProposalType `json:"type_of_proposal"`
	Images           []string     `json:"images"`
	ModifiedDatetime time.Time    `json:"modified_datetime"`
}
