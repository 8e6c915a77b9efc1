// Package profile defines the built-in delivery profiles and persists
// profiles as one JSON file per name.
//
// Profiles are immutable values. Editing a profile with Customize returns a
// new value; nothing is written until Store.Save is called.
//
// # On-disk format
//
//	{
//	  "name": "VFX",
//	  "required_folders": ["geo", "tex"],
//	  "allowed_extensions": ["abc", "fbx"],
//	  "rules": {
//	    "enforce_no_spaces": true,
//	    "warn_missing_version_token": true,
//	    "warn_unsupported_extensions": true,
//	    "error_missing_required_folders": true
//	  }
//	}
//
// allowed_extensions is always written sorted so saved files diff cleanly.
package profile
