package audio

import (
	"math"
)

// Synthesize renders cue as interleaved stereo float32 little-endian PCM.
func Synthesize(cue Cue) []byte {
	switch cue {
	case CueShot:
		return genShot()
	case CueChargedShot:
		return genChargedShot()
	case CueEnemyShot:
		return genEnemyShot()
	case CueExplosionSmall:
		return genExplosion(0.2, 1)
	case CueExplosionBig:
		return genExplosion(0.8, 2)
	case CueExplosionCharged:
		return genExplosion(1, 3)
	case CueHit:
		return genHit()
	case CueRespawn:
		return genRespawn()
	case CueLevelUp:
		return genLevelUp()
	}
	return nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle saturation that never exceeds [-1, 1].
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// genShot: short descending FM zap.
func genShot() []byte {
	n := int(0.08 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.4, 0.2, 0.3)
		freq := 1400 - 900*p
		s := fm(t, freq, 1.5, 2.5*env) * env * 0.35
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genChargedShot: rising sweep with a bright FM body.
func genChargedShot() []byte {
	n := int(0.32 * SampleRate)
	buf := makeBuf(n)
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		env := adsr(p, 0.05, 0.3, 0.5, 0.4)
		freq := 220 * math.Pow(4, p)
		phase += 2 * math.Pi * freq / SampleRate
		s := math.Sin(phase+3*env*math.Sin(phase*2)) * env * 0.45
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genEnemyShot: low soft-square blip.
func genEnemyShot() []byte {
	n := int(0.1 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.1, 0.3)
		freq := 330 - 120*p
		s := math.Tanh(3*math.Sin(2*math.Pi*freq*t)) * env * 0.22
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genExplosion renders a noise burst over a falling sub tone. norm in [0,1]
// scales length and depth; seed varies the noise.
func genExplosion(norm float64, seed uint64) []byte {
	dur := 0.26 + 0.64*norm
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	lp1, lp2, rumLP := 0.0, 0.0, 0.0
	subPhase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)

		subStart := 155.0 - 65.0*norm
		subEnd := math.Max(34.0-18.0*norm, 10)
		subFreq := subStart * math.Pow(subEnd/subStart, p*(1.6+1.5*norm))
		subPhase += 2 * math.Pi * subFreq / SampleRate
		sub := math.Sin(subPhase) * math.Exp(-p*(7.0-3.8*norm)) * (0.44 + 0.34*norm)

		crack := 0.0
		crackWin := math.Max(0.038-0.020*norm, 0.010)
		if p < crackWin {
			crack = lcg(&seed) * (1 - p/crackWin) * (0.88 - 0.28*norm)
		}

		raw := lcg(&seed)
		lp1 = lp1*0.76 + raw*0.24
		lp2 = lp2*0.975 + raw*0.025
		body := (lp1 - lp2) * math.Exp(-p*(6.2-2.2*norm)) * (0.30 + 0.17*norm)

		rumLP = rumLP*0.95 + lcg(&seed)*0.05
		rumble := rumLP * math.Exp(-p*(3.0-1.5*norm)) * (0.06 + 0.20*norm)

		putStereoF32(buf, i, softSat((sub+crack+body+rumble)*0.86))
	}
	return buf
}

// genHit: descending FM thud.
func genHit() []byte {
	n := int(0.16 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.015, 0.55, 0.1, 0.25)
		freq := 320 - 220*p
		s := fm(t, freq, 1.5, 2.8*(1-p)) * env * 0.52
		s += math.Sin(2*math.Pi*freq*2*t) * env * 0.1
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genRespawn: two-note rising chime.
func genRespawn() []byte {
	return bells([]float64{523.25, 783.99}, 0.12, 0.3)
}

// genLevelUp: ascending bell staircase, each note ringing over the next.
func genLevelUp() []byte {
	return bells([]float64{440, 554.37, 659.25, 880, 1108.73}, 0.09, 0.25)
}

// bells mixes FM bell notes started step seconds apart, followed by tail
// seconds of ring-out.
func bells(notes []float64, step, tail float64) []byte {
	noteStep := int(step * SampleRate)
	total := len(notes)*noteStep + int(tail*SampleRate)
	mix := make([]float64, total)

	for fi, freq := range notes {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.003, 0.65, 0.04, 0.28)
			s := fm(t, freq, 3.5, 5.5*env) * env * 0.28
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.07
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
