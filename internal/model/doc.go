// Package model defines shared data types used across the collection pipeline.
//
// Conventions:
//   - Timestamps: time.Time, always UTC
//   - Post IDs: Reddit base-36 strings
//   - Windows: closed intervals, both bounds inclusive
package model
