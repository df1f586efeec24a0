// Package sim executes circuits shot by shot. Each shot owns a fresh
// state vector and classical register, replays the full operation
// sequence, and contributes one bitstring to the run's histogram.
// Shots are independent and run in parallel across a small worker
// pool; a fixed seed reproduces the identical histogram at any worker
// count because every shot derives its generator from seed + index.
package sim
