package cleanup

import "log"

type Job struct {
	Name string
	F    func() error
}

var jobs []*Job

func Register(j *Job) {
	jobs = append(jobs, j)
}

// CleanUp runs registered jobs in registration order. Errors are logged,
// not returned: shutdown keeps going past a failed job.
func CleanUp() {
	for _, j := range jobs {
		log.Printf("Cleanup job %s started...", j.Name)
		if err := j.F(); err != nil {
			log.Printf("Job %s finished with error: %v", j.Name, err)
		} else {
			log.Println("Cleaned")
		}
	}
}
