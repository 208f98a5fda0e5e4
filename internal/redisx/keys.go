package redisx

import "time"

const (
	// Addon cart per user: hash cart:{user_id}, field addon_id -> line JSON
	KeyCart = "cart:%s"

	// Pending cart action staged for anonymous sessions: pending_cart:{session_id}
	KeyPendingCart = "pending_cart:%s"

	// Toast inbox per recipient: list toasts:{user_or_session_id}
	KeyToasts = "toasts:%s"

	// Dedup event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"
)

var (
	TTLCart        = 7 * 24 * time.Hour
	TTLPendingCart = 24 * time.Hour
	TTLToasts      = 15 * time.Minute
	TTLDedup       = 48 * time.Hour
)
