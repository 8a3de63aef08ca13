package commentary

import (
	"fmt"
	"math/rand"
	"strings"
)

// Templated commentary used whenever the remote model is unavailable or
// fails and fallback is permitted. This path never fails.

var englishOpenings = []string{
	"%s are flying forward, one-touch football shredding the press and the crowd is on its feet!",
	"Listen to the roar! %s rip through midfield, a give-and-go opens acres of grass and the box is chaos!",
	"You can feel the electricity! %s sling a whipped cross in, bodies hurling at the near post!",
}

var englishFinishers = []string{
	"IT'S A STUNNER THAT RATTLES THE TOP BINS!!!",
	"GOAL! SENSATIONAL STRIKE, THE NET IS STILL SHAKING!!!",
	"THE PLACE ERUPTS AS THAT CURLER KISSES THE FAR STANCHION!!!",
	"WHAT A ROCKET, THE KEEPER'S BEATEN ALL ENDS UP!!!",
}

var englishColourCalls = []string{
	"The touch, the vision, the finish - that's box-office football!",
	"This ground is bouncing, you simply cannot script drama like this!",
	"Championship tempo, heavyweight execution, and the fans are losing their minds!",
}

var spanishStrikes = []string{
	"Latigazo inapelable",
	"Disparo teledirigido",
	"Toque de seda",
}

var koreanFinishes = []string{
	"골대 상단을 갈라버립니다",
	"골문 구석으로 빨려 들어갑니다",
	"스토퍼를 지나며 그물을 뒤흔듭니다",
}

// MockCommentary assembles a templated broadcast call from fixed phrase
// banks. Team names arrive as structured data from the PromptContext.
// Spanish and Korean get their own banks; everything else uses English.
func MockCommentary(teamA, teamB, language string) string {
	if strings.HasPrefix(language, "es") {
		return fmt.Sprintf(
			"%s rompe lineas con puro vértigo, pared y desmarque que enloquecen a la grada! GOOOOOOL! %s que besa la escuadra y hace temblar el estadio!!!",
			teamA,
			spanishStrikes[rand.Intn(len(spanishStrikes))],
		)
	}
	if strings.HasPrefix(language, "ko") {
		return fmt.Sprintf(
			"%s의 번개 같은 전진입니다! 패스가 번쩍이며 수비를 찢어 놓고 관중의 함성이 폭발합니다! 마지막 슛이 %s!!!",
			teamA,
			koreanFinishes[rand.Intn(len(koreanFinishes))],
		)
	}

	opening := englishOpenings[rand.Intn(len(englishOpenings))]
	team := teamA
	if strings.Contains(opening, "roar") {
		team = teamB
	}
	return fmt.Sprintf("%s %s %s",
		fmt.Sprintf(opening, team),
		englishFinishers[rand.Intn(len(englishFinishers))],
		englishColourCalls[rand.Intn(len(englishColourCalls))],
	)
}
