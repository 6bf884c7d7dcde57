package models

import (
	"time"
)

// TdsReturn : Form 26Q return header Model
type TdsReturn struct {
	ID              int64  `json:"id" bun:",pk,autoincrement"`
	Tan             string `json:"tan" bun:",notnull"`
	Pan             string `json:"pan" bun:",nullzero"`
	DeductorName    string `json:"deductor_name" bun:",notnull"`
	DeductorType    string `json:"deductor_type" bun:",nullzero"`
	DeductorAddress string `json:"deductor_address" bun:",nullzero"`
	AssessmentYear  string `json:"assessment_year" bun:",notnull"`
	Quarter         string `json:"quarter" bun:",nullzero"`

	VerifierName        string `json:"verifier_name" bun:",nullzero"`
	VerifierDesignation string `json:"verifier_designation" bun:",nullzero"`
	VerifiedAtPlace     string `json:"verified_at_place" bun:",nullzero"`

	CreatedAt time.Time `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`

	Challans  []TdsChallan  `json:"challans" bun:"rel:has-many,join:id=return_id"`
	Deductees []TdsDeductee `json:"deductees" bun:"rel:has-many,join:id=return_id"`
}
