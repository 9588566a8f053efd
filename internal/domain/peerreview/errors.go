package peerreview

import "errors"

var ErrReviewNotFound = errors.New("peer review not found")
