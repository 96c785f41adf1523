// SPDX-License-Identifier: MIT

// Package config holds the explicit engine configuration (entry rules,
// scanner parameters, remote fetch limits, logging) and loads it from HCL.
//
// Every block and attribute is optional; absent values keep Default().
// Expressions may refer to the defaults as default.<block>.<attr> and to
// the process environment as env.<NAME>, and may call upper, lower, min,
// max and format:
//
//	scan {
//	  brightness_threshold = default.scan.brightness_threshold * 0.8
//	}
//	remote {
//	  timeout = "10s"
//	}
//	log {
//	  level = lower(env.XWGRID_LOG_LEVEL)
//	}
package config
