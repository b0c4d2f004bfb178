// Package config provides configuration management for navhud.
//
// Configuration is layered: the built-in defaults are loaded first, then the user
// file and finally the project file, with later sources overriding earlier ones.
//
//  1. Default Configuration (embedded in binary)
//  2. User Configuration (~/.config/navhud/config.yaml)
//  3. Project Configuration (./.navhud/config.yaml)
//
// # Configuration Structure
//
//	animation:
//	  enabled: true
//	  scale: 1.0           # multiplies every transition duration
//	  stepsOpen: 350ms
//	  stepsClose: 350ms
//	  auxiliaryFade: 200ms
//	  frameInterval: 33ms
//	status:
//	  rerouteHideDelay: 2s
//	  fasterRouteDuration: 3s
//	simulation:
//	  mode: always         # always | onPoorGPS | never
//	  speedMultiplier: 1
//	  tickInterval: 200ms
//	  rerouteEvery: 0s     # 0 disables periodic reroutes
//	display:
//	  colorMode: auto      # auto | dark | light | ascii
//	  units: metric        # metric | imperial
//	  locale: en-US
//	logging:
//	  level: info
//
// Durations use Go duration syntax. Command line flags of `navhud run` are applied
// on top of the merged result.
package config
