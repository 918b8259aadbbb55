// Package models defines the JSON payloads of the plans feature.
package models
