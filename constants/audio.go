package constants

import "time"

// Sound cue durations
const (
	ShipBulletSoundDuration    = 120 * time.Millisecond
	InvaderBulletSoundDuration = 160 * time.Millisecond
	ShipHitSoundDuration       = 300 * time.Millisecond
	InvaderHitSoundDuration    = 220 * time.Millisecond
)

// Sound cue frequencies in Hz
const (
	ShipBulletFreq    = 880.0
	InvaderBulletFreq = 220.0
	ShipHitFreq       = 110.0
	InvaderHitFreq    = 440.0
)

// AudioBufferDuration is the speaker buffer length
const AudioBufferDuration = 100 * time.Millisecond

// AudioSampleRate is the mixer sample rate in Hz
const AudioSampleRate = 48000
