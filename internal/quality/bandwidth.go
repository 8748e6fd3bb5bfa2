package quality

// Bandwidth is a latency-derived throughput estimate in Mbps. No transfer
// is performed; callers must treat these figures as an approximation, never
// as measured throughput.
type Bandwidth struct {
	DownloadMbps float64 `json:"downloadMbps"`
	UploadMbps   float64 `json:"uploadMbps"`
}

// EstimateBandwidth infers a coarse throughput figure from average latency
// using a piecewise-linear curve. Download is clamped to [5,200] Mbps and
// upload to [2,100], with the upload ratio shrinking from 0.9 on the best
// bucket to 0.6 on the worst.
func EstimateBandwidth(avgLatencyMs float64) Bandwidth {
	var download, ratio float64
	switch {
	case avgLatencyMs < 20:
		download = 100 + (50-avgLatencyMs)*2
		ratio = 0.9
	case avgLatencyMs < 50:
		download = 50 + (50-avgLatencyMs)*1.5
		ratio = 0.8
	case avgLatencyMs < 100:
		download = 25 + (100-avgLatencyMs)*0.5
		ratio = 0.7
	default:
		download = 25 - (avgLatencyMs-100)*0.2
		if download < 5 {
			download = 5
		}
		ratio = 0.6
	}

	download = clampFloat(download, 5, 200)
	upload := clampFloat(download*ratio, 2, 100)
	return Bandwidth{DownloadMbps: download, UploadMbps: upload}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
