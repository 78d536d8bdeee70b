package model

// Melody is the monophonic line collected by one formatting pass: one note
// or rest per processed event, in part, measure, event order.
type Melody = []Event
