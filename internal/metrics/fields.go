package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrLeague   = "league"
	AttrResult   = "result"
)

// Cache lookup results reported under AttrResult.
const (
	ResultHit  = "hit"
	ResultMiss = "miss"
)
