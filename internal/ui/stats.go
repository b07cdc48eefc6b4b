package ui

import "sync/atomic"

type Stats struct {
	TotalFragments atomic.Int64
	TotalBytes     atomic.Int64
}
