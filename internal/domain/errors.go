package domain

import "errors"

var (
	ErrClientNotFound   = errors.New("client not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrProposalNotFound = errors.New("proposal not found")
	ErrBadgeNotFound    = errors.New("badge not found")
	ErrUserNotFound     = errors.New("user not found")

	// Deleting an entity still referenced by proposals is forbidden.
	ErrClientInUse   = errors.New("client is referenced by existing proposals")
	ErrTemplateInUse = errors.New("template is referenced by existing proposals")

	ErrUnknownActivityType = errors.New("unknown activity type")
	ErrUnknownCRMProvider  = errors.New("unknown CRM provider")
	ErrClientEmailMissing  = errors.New("client has no contact email")
	ErrInvalidStatus       = errors.New("invalid proposal status")
)
