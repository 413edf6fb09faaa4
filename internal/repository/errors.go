package repository

import "errors"

// ErrNotFound é devolvido apenas por Delete; Find sinaliza ausência com (nil, nil).
var ErrNotFound = errors.New("empresa not found")
