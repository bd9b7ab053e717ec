package tracer

import "sync/atomic"

// Stats counts rays cast since the Tracer was created.
type Stats struct {
	CameraRays    int64
	ReflectedRays int64
	ShadowRays    int64
}

type counters struct {
	cameraRays    atomic.Int64
	reflectedRays atomic.Int64
	shadowRays    atomic.Int64
}

func (c *counters) snapshot() Stats {
	return Stats{
		CameraRays:    c.cameraRays.Load(),
		ReflectedRays: c.reflectedRays.Load(),
		ShadowRays:    c.shadowRays.Load(),
	}
}

// Total is the number of rays of every kind.
func (s Stats) Total() int64 {
	return s.CameraRays + s.ReflectedRays + s.ShadowRays
}
