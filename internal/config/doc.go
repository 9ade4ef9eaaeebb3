// Package config loads and validates the fanctl intent configuration file.
//
// The intent file declares, per hardware driver, which numbered pwm, temp
// and fan channels to control and the limit pairs for temperature, start/stop
// thresholds and raw PWM values:
//
//	devices:
//	  nct6775:
//	    pwm: 1
//	    temp: 1
//	    fan: 1
//	    limits:
//	      st: [50, 150]
//	      temp: [40, 70]
//	      pwm: [0, 255]
//
// Validation is an all-or-nothing static pass over the document: every
// violation across every declared device is collected into a single
// ValidationError before any hardware is touched.
package config
