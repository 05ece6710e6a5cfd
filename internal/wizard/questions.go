package wizard

// NumQuestions is the fixed number of reactivos every instructor is
// rated on. The question set never varies per instructor or per phase.
const NumQuestions = 17

// Questions holds the 17 reactivos in presentation order. Index 0 is
// reactivo 1.
var Questions = [NumQuestions]string{
	"Al inicio del curso, el profesor da a conocer el programa de la materia y la forma de evaluar.",
	"El profesor argumenta la importancia de su curso y enriquece su clase con información del mundo real, bibliografía clásica pero también actualizada y otras fuentes de consulta.",
	"El profesor domina la materia que imparte.",
	"El maestro tiene la habilidad para transmitir el conocimiento.",
	"Durante la clase aporta ideas complementarias, ejemplos prácticos y hace comentarios de índole académico que enriquecen tu aprendizaje.",
	"El profesor utiliza material didáctico para mejorar la comprensión de los temas.",
	"El profesor despierta el interés en la clase.",
	"El profesor propicia la participación activa en la clase.",
	"Brinda recomendaciones claras que refuerzan la metodología y las actividades de aprendizaje del curso.",
	"El profesor encarga trabajos académicos para favorecer la realización del trabajo interdisciplinario.",
	"El profesor retroalimenta las actividades del curso de un modo puntual y efectivo de modo tal que enriquecen tu aprendizaje.",
	"Tanto en el desarrollo del curso como en las evaluaciones, el maestro obliga a pensar y a razonar.",
	"El maestro aclara satisfactoriamente las dudas.",
	"El curso se desarrolla en un ambiente de respeto y disciplina.",
	"El profesor mantiene comunicación constante y efectiva.",
	"El cumplimiento del profesor en cuanto a puntualidad y asistencia ha sido satisfactorio.",
	"Tomando en cuenta los aspectos de organización del curso, revisión de actividades, motivación, comunicación, dominio del tema y puntualidad, ¿cómo evalúas el desempeño general de tu profesor?",
}

// ConsentText is shown on the first wizard phase and must be accepted
// before registration.
const ConsentText = `Muy estimado alumno del Posgrado de la Facultad de Psicología y Terapia de la Comunicación Humana: Todo lo que aquí respondas es estrictamente confidencial. En ningún momento, ni en los análisis ni en los informes, se incluirán tus datos personales.

Los profesores conocerán únicamente los datos estadísticos globales de los grupos encuestados y se les harán saber una vez que hayan cerrado todos los cursos. Igualmente, te pedimos tu correo electrónico solo para enviarte la confirmación de que recibimos tu encuesta.`
