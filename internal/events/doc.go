// Package events carries engine notifications to observers.
//
// A Bus fans events out to subscriber channels in publication order. Publish
// never blocks: a subscriber whose buffer is full is unsubscribed and its
// channel closed, and it has to subscribe again to resume.
package events
