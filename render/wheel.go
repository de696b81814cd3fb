package render

import (
	"time"
)

const (
	binaryDetectCnt = 4
	initialMaxDelta = 10
)

type wheelType int

const (
	wheelTypeNone wheelType = iota
	wheelTypeBinary
	wheelTypeContinuous
)

// WheelNormalizer converts raw wheel deltas into steps that feel the same on
// notched mouse wheels and on touchpads.
type WheelNormalizer struct {
	// Now returns the current time. time.Now is used if nil.
	Now func() time.Time

	init     bool
	eventCnt int

	wheelType wheelType
	maxDelta  float32

	binaryCnt int
	binaryAbs float32

	timePrev time.Time
	dSum     float32
}

func (n *WheelNormalizer) now() time.Time {
	if n.Now == nil {
		return time.Now()
	}
	return n.Now()
}

// Normalize returns the normalized delta and whether enough events were seen
// to classify the device.
func (n *WheelNormalizer) Normalize(d float32) (float32, bool) {
	if n.eventCnt > binaryDetectCnt {
		n.init = true
	} else {
		n.eventCnt++
	}

	dAbs := d
	if dAbs < 0 {
		dAbs = -d
	}
	if dAbs == 0 {
		return 0, n.init
	}

	if n.binaryAbs == dAbs {
		n.binaryCnt++
	} else {
		n.binaryCnt = 0
	}
	n.binaryAbs = dAbs

	typePrev := n.wheelType
	if n.binaryCnt > binaryDetectCnt {
		n.wheelType = wheelTypeBinary
	} else {
		n.wheelType = wheelTypeContinuous
	}
	if n.wheelType != typePrev {
		n.maxDelta = initialMaxDelta
	}

	now := n.now()
	dt := float32(now.Sub(n.timePrev).Seconds())
	n.dSum += d
	if dt > 0 {
		if dt > 0.1 {
			dt = 0.1
		}
		dps := n.dSum / dt
		n.dSum = 0
		n.timePrev = now

		if dps < 0 {
			dps = -dps
		}
		if n.maxDelta < dps {
			// low-pass against spikes
			n.maxDelta = n.maxDelta*0.5 + dps*0.5
		}
		n.maxDelta *= 0.95
	}

	if n.maxDelta < 1 {
		n.maxDelta = 1
	}
	if n.wheelType == wheelTypeBinary {
		if d < 0 {
			return -1, n.init
		}
		return 1, n.init
	}
	return d * 250 / n.maxDelta, n.init
}
