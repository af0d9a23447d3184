package models

// Condition is a treated condition page. The registry is compiled into the
// binary and never mutated at runtime.
type Condition struct {
	ID      string
	Slug    string
	Title   string
	Summary ConditionSummary
	Content ConditionContent
	SEO     ConditionSEO
}

type ConditionSummary struct {
	WhatItIs       string
	WhenToSeekHelp string
}

type ConditionContent struct {
	Overview          string
	TreatmentApproach string
}

type ConditionSEO struct {
	Title       string
	Description string
	Keywords    string
}
