package service

import "invest-calc/domain"

var (
	ErrInvalidArgument = domain.ErrInvalidArgument
	ErrNoRootInBracket = domain.ErrNoRootInBracket
)
