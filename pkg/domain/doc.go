// Package domain contains the entities exchanged between the service layer,
// storage and transports: generated passwords, strength reports and history
// entries. They carry no infrastructure concerns.
package domain
