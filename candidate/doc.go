// Package candidate generates candidate sensor positions and yaw
// variants across the ROI.
//
// What:
//   - Scans the same deterministic grid shape as package sampler, but
//     without jitter, and rejects positions inside the keepout-buffered
//     obstacle zone.
//   - For dome/360-degree sensors, emits one candidate per position at
//     yaw 0. For partial-FOV sensors, emits one candidate per position
//     per discrete yaw step, covering [0, 360) degrees.
//
// YawStepDeg from config.Settings is honored whenever the caller
// supplies one; a non-positive value falls back to the documented
// 30-degree default rather than silently hardcoding it.
package candidate
