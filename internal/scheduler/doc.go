// Package scheduler decides which measure or measure-group a learner should
// practice next.
//
// The pipeline runs in three stages over an assembled catalog: the learning
// window (the prefix of single measures currently in play, which expands one
// measure at a time only once everything inside it is proficient), the
// eligibility filter (unmastered singles, else unmastered contained groups,
// else the next unseen measure), and the selector (a single random draw that
// occasionally revisits mastered or decent material, otherwise a
// deterministic least-mastered/least-practiced/earliest pick).
//
// The scheduler never mutates its inputs and isolates all randomness behind
// an injectable source so decisions replay deterministically in tests.
package scheduler
