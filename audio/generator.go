package audio

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/boxes/constants"
	"github.com/lixenwraith/boxes/core"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
	waveNoise
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates raw waveform samples
func oscillator(waveType int, freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(constants.AudioSampleRate)

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		case waveNoise:
			buf[i] = rand.Float64()*2 - 1
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * float64(constants.AudioSampleRate))
	releaseSamples := int(releaseSec * float64(constants.AudioSampleRate))

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// mixFloatBuffers adds b into a (in place), extending a if needed
func mixFloatBuffers(a, b floatBuffer, bScale float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

// concatFloatBuffers appends b to a
func concatFloatBuffers(a, b floatBuffer) floatBuffer {
	result := make(floatBuffer, len(a)+len(b))
	copy(result, a)
	copy(result[len(a):], b)
	return result
}

// durationToSamples converts duration to sample count
func durationToSamples(d float64) int {
	return int(d * float64(constants.AudioSampleRate))
}

// --- Cue Generators (unity gain) ---

// generateSpawnCue is a soft sine blip
func generateSpawnCue() floatBuffer {
	samples := durationToSamples(constants.SpawnCueDuration.Seconds())
	buf := oscillator(waveSine, 540.0, samples)
	applyEnvelope(buf, constants.SpawnCueAttack.Seconds(), constants.SpawnCueRelease.Seconds())
	return buf
}

// generateGrabCue is a short high click
func generateGrabCue() floatBuffer {
	samples := durationToSamples(constants.GrabCueDuration.Seconds())
	buf := oscillator(waveSquare, 880.0, samples)
	applyEnvelope(buf, constants.GrabCueAttack.Seconds(), constants.GrabCueRelease.Seconds())
	return buf
}

// generateReleaseCue mirrors the grab click, pitched down
func generateReleaseCue() floatBuffer {
	samples := durationToSamples(constants.GrabCueDuration.Seconds())
	buf := oscillator(waveSquare, 880.0*constants.ReleaseCueFactor, samples)
	applyEnvelope(buf, constants.GrabCueAttack.Seconds(), constants.GrabCueRelease.Seconds())
	return buf
}

// generateImpactCue is a low thud with a noise transient
func generateImpactCue() floatBuffer {
	samples := durationToSamples(constants.ImpactCueDuration.Seconds())

	thud := oscillator(waveSine, 110.0, samples)
	applyEnvelope(thud, constants.ImpactCueAttack.Seconds(), constants.ImpactCueRelease.Seconds())

	crack := oscillator(waveNoise, 0, samples/3)
	applyEnvelope(crack, constants.ImpactCueAttack.Seconds(), constants.ImpactCueDuration.Seconds()/3)

	return mixFloatBuffers(thud, crack, 0.35)
}

// generateShakeCue is a saw rumble under noise
func generateShakeCue() floatBuffer {
	samples := durationToSamples(constants.ShakeCueDuration.Seconds())

	rumble := oscillator(waveSaw, 70.0, samples)
	applyEnvelope(rumble, constants.ShakeCueAttack.Seconds(), constants.ShakeCueRelease.Seconds())

	hiss := oscillator(waveNoise, 0, samples)
	applyEnvelope(hiss, constants.ShakeCueAttack.Seconds(), constants.ShakeCueRelease.Seconds())

	return mixFloatBuffers(rumble, hiss, 0.25)
}

// generateResetCue is a two-note descending sweep
func generateResetCue() floatBuffer {
	half := constants.ResetCueDuration.Seconds() / 2

	n1 := oscillator(waveSine, 880.0, durationToSamples(half))
	applyEnvelope(n1, constants.ResetCueAttack.Seconds(), half/2)

	n2 := oscillator(waveSine, 440.0, durationToSamples(half))
	applyEnvelope(n2, constants.ResetCueAttack.Seconds(), constants.ResetCueRelease.Seconds())

	return concatFloatBuffers(n1, n2)
}

// generateMenuCue is a tiny navigation tick
func generateMenuCue() floatBuffer {
	samples := durationToSamples(constants.MenuCueDuration.Seconds())
	buf := oscillator(waveSquare, 1318.51, samples)
	applyEnvelope(buf, constants.MenuCueAttack.Seconds(), constants.MenuCueRelease.Seconds())
	return buf
}

// generateErrorCue is a low saw buzz
func generateErrorCue() floatBuffer {
	samples := durationToSamples(constants.ErrorCueDuration.Seconds())
	buf := oscillator(waveSaw, 100.0, samples)
	applyEnvelope(buf, constants.ErrorCueAttack.Seconds(), constants.ErrorCueRelease.Seconds())
	return buf
}

// generateCue dispatches to the specific generator
func generateCue(cue core.Cue) floatBuffer {
	switch cue {
	case core.CueSpawn:
		return generateSpawnCue()
	case core.CueGrab:
		return generateGrabCue()
	case core.CueRelease:
		return generateReleaseCue()
	case core.CueImpact:
		return generateImpactCue()
	case core.CueShake:
		return generateShakeCue()
	case core.CueReset:
		return generateResetCue()
	case core.CueMenu:
		return generateMenuCue()
	case core.CueError:
		return generateErrorCue()
	default:
		return nil
	}
}
