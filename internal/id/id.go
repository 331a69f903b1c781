package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const orderAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// New creates a prefixed unique ID using NanoID, e.g. "book-V1StGXR8_Z5jdHi6B-myT".
func New(prefix string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}

// MustNew is like New but panics if ID generation fails. Use only where a
// failure should crash the program.
func MustNew(prefix string) string {
	id, err := New(prefix)
	if err != nil {
		panic(fmt.Sprintf("failed to generate ID: %v", err))
	}
	return id
}

// NewOrder creates an order ID in the customer-visible "ORD-" format, e.g.
// "ORD-K27FQP". The short uppercase suffix keeps it readable on a packing
// slip while staying distinguishable from book and photo IDs.
func NewOrder() (string, error) {
	suffix, err := gonanoid.Generate(orderAlphabet, 6)
	if err != nil {
		return "", fmt.Errorf("generate order id: %w", err)
	}
	return "ORD-" + suffix, nil
}

// MustNewOrder is like NewOrder but panics on failure.
func MustNewOrder() string {
	id, err := NewOrder()
	if err != nil {
		panic(fmt.Sprintf("failed to generate order ID: %v", err))
	}
	return id
}
