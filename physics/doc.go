// Package physics is the scene host's minimal physics: linear move actions
// with a removal grace delay, begin-only AABB contact detection filtered by
// category and contact-test bitmasks, and a one-axis kinetic body for the
// tilt-driven ship. There is no collision response.
package physics
