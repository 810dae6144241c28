// Package config manages user-level settings stored at ~/.readlater/config.yaml.
// Settings can be overridden with READLATER_* environment variables; the
// most important one is the location of the read-later list file.
package config
