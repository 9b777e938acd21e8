package auctionerrors

import "errors"

// Store-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
)

// business logic errors
var (
	ErrInvalidRequirements = errors.New("invalid requirements")
	ErrNoVendors           = errors.New("no vendors resolvable for auction")
	ErrAlreadyStarted      = errors.New("auction already started")
	ErrAuctionNotEnded     = errors.New("auction has not ended yet")
	ErrInvalidVendorRow    = errors.New("invalid vendor row")
	ErrMissingText         = errors.New("message text is required")
)
