// Package collection holds the containers the registry assembles for
// collection typed parameters: an ordered list, a hash set and a sorted set.
package collection
