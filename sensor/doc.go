// Package sensor defines the immutable LiDAR sensor model and the r_eff
// law that derives its effective floor-coverage radius.
package sensor
