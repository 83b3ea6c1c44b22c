package logs

const createRunTable = `
CREATE TABLE IF NOT EXISTS runs (
  id integer primary key,
  time datetime not null,
  disks int not null,
  moves int not null,
  micros int not null,
  variant text not null
)`

const insertStmt = `
INSERT INTO runs (time, disks, moves, micros, variant)
VALUES (:time, :disks, :moves, :micros, :variant)
`

const selectRuns = `
SELECT id, time, disks, moves, micros, variant
FROM runs
ORDER BY time DESC, id DESC
`

const selectRunsByDisks = `
SELECT id, time, disks, moves, micros, variant
FROM runs
WHERE disks = ?
ORDER BY time DESC, id DESC
`
