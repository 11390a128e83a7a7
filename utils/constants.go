// File: utils/constants.go
package utils

import "time"

// AttendantPoolCachePrefix is the prefix used for Redis attendant pool cache keys.
const AttendantPoolCachePrefix = "attendants:sector:"

// AttendantPoolCacheTTL is the time-to-live for attendant pool cache entries.
const AttendantPoolCacheTTL = 5 * time.Minute
