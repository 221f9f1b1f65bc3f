// Package journal persists finished ringing sessions.
//
// The FileRepository keeps the sessions as protobuf JSON on disk, newest
// last, and trims the oldest entries beyond a configurable cap.
package journal
